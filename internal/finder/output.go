package finder

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color support.
type Output struct {
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		yellow: color("yellow"),
	}
}

// Match writes a file match in the format: matching file: path.
func (o *Output) Match(path string) {
	fmt.Fprintf(o.stdout, "%s %s\n", o.cyan("matching file:"), o.green(path))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}
