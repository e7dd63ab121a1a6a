// Package finder decides which filesystem entries qualify as search results
// and reports them.
package finder

import (
	"io"

	"github.com/jrd666/fsfind/internal/fstree"
)

// Finder orchestrates the file finding process.
type Finder struct {
	output *Output
}

// New creates a new Finder.
func New(stdout, stderr io.Writer, colorize bool) *Finder {
	return &Finder{
		output: NewOutput(stdout, stderr, colorize),
	}
}

// Find executes the search based on the provided options, printing each
// match as it is discovered. It returns an error when the filters fail to
// compile or the root cannot be walked; unreadable entries below the root
// are reported as warnings and skipped.
func (f *Finder) Find(opts *Options) error {
	return f.find(opts, func(path string) {
		f.output.Match(path)
	})
}

// List is like Find but collects the matching paths instead of printing
// them, in the same traversal order.
func (f *Finder) List(opts *Options) ([]string, error) {
	var matches []string
	err := f.find(opts, func(path string) {
		matches = append(matches, path)
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (f *Finder) find(opts *Options, report func(path string)) error {
	filters, err := NewFilterSet(opts)
	if err != nil {
		return err
	}

	walker := &fstree.Walker{
		MaxDepth: opts.MaxDepth,
		OnError: func(path string, err error) {
			f.output.Warningf("%s: %v", path, err)
		},
	}

	return walker.Walk(opts.Root, func(e fstree.Entry) {
		if filters.Matches(e) {
			report(e.Path)
		}
	})
}
