package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/jrd666/fsfind/internal/finder"
	"github.com/jrd666/fsfind/internal/sizeparse"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color      = colorAuto
	maxDepth   int
	extension  string
	pattern    string
	sizeMin    string
	sizeMax    string
	ignoreCase bool
	fullPath   bool
	excludes   []string
)

var rootCmd = &cobra.Command{
	Use:   "fsfind [flags] <path>",
	Short: "Find files in a directory tree",
	Long: `fsfind is a find(1)-like utility for local directory trees.

It walks the tree rooted at <path> depth-first and prints every file that
passes all of the active filters, one per line. Directories are traversed
but never reported.

The pattern is a regular expression searched within the filename (or the
path relative to <path> with --full-path). It does not need to match the
whole name unless it is anchored.

Sizes accept a plain byte count or a unit suffix (1024-based):
  fsfind -g 500k -l 10M <path>

Examples:
  fsfind -e .go .
  fsfind -p '^b' -d 2 /srv/data
  fsfind -e .rs -g 10 project/
  fsfind -i -e .JPG -E '*_thumb.*' ~/pictures`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if maxDepth < 0 {
			return fmt.Errorf("--depth must be non-negative, got %d", maxDepth)
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&maxDepth, "depth", "d", math.MaxInt,
		"max depth of subdirectories to explore (default unbounded)")
	rootCmd.Flags().StringVarP(&extension, "extension", "e", "",
		"only report files whose name ends with this extension")
	rootCmd.Flags().StringVarP(&pattern, "pattern", "p", "",
		"only report files whose name contains this regex")
	rootCmd.Flags().StringVarP(&sizeMin, "size-greater-than", "g", "",
		"only report files of at least this size (e.g., 1M, 500k, 1024)")
	rootCmd.Flags().StringVarP(&sizeMax, "size-less-than", "l", "",
		"only report files of at most this size (e.g., 5M, 1GB)")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"case-insensitive extension and pattern matching")
	rootCmd.Flags().BoolVar(&fullPath, "full-path", false,
		"match pattern against the path relative to <path> (default: basename only)")
	rootCmd.Flags().StringSliceVarP(&excludes, "exclude", "E", []string{},
		"exclude glob patterns (can be specified multiple times)")
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
}

func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = os.Getenv("NO_COLOR") == "" &&
			(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	}

	// Parse size filters. Zero is a legal bound: -l 0 selects empty files.
	var minSizeBytes, maxSizeBytes *int64

	if sizeMin != "" {
		size, err := sizeparse.ParseBytes(sizeMin)
		if err != nil {
			return fmt.Errorf("invalid --size-greater-than %q: %w", sizeMin, err)
		}
		minSizeBytes = &size
	}

	if sizeMax != "" {
		size, err := sizeparse.ParseBytes(sizeMax)
		if err != nil {
			return fmt.Errorf("invalid --size-less-than %q: %w", sizeMax, err)
		}
		maxSizeBytes = &size
	}

	// A minimum above the maximum is accepted and simply matches nothing;
	// the bounds are independent predicates.

	opts := &finder.Options{
		Root:       args[0],
		MaxDepth:   maxDepth,
		Extension:  extension,
		Pattern:    pattern,
		MinSize:    minSizeBytes,
		MaxSize:    maxSizeBytes,
		IgnoreCase: ignoreCase,
		FullPath:   fullPath,
		Excludes:   excludes,
	}

	f := finder.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)
	return f.Find(opts)
}
