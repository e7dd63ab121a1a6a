package finder

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jrd666/fsfind/internal/fstree"
)

// FilterSet is the compiled, validated set of active predicates. It is
// constructed once per invocation and read-only during the walk; the pattern
// is compiled here so no per-entry compilation happens.
type FilterSet struct {
	ext        string
	re         *regexp.Regexp
	minSize    *int64
	maxSize    *int64
	excludes   []string
	ignoreCase bool
	fullPath   bool
}

// NewFilterSet compiles the optional filters in opts. It fails when the
// pattern is not a valid regular expression or an exclude glob is malformed.
func NewFilterSet(opts *Options) (*FilterSet, error) {
	fs := &FilterSet{
		ext:        opts.Extension,
		minSize:    opts.MinSize,
		maxSize:    opts.MaxSize,
		ignoreCase: opts.IgnoreCase,
		fullPath:   opts.FullPath,
	}

	if opts.Pattern != "" {
		pattern := opts.Pattern
		if opts.IgnoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", opts.Pattern, err)
		}
		fs.re = re
	}

	for _, glob := range opts.Excludes {
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("invalid exclude pattern %q", glob)
		}
		if opts.IgnoreCase {
			glob = strings.ToLower(glob)
		}
		fs.excludes = append(fs.excludes, glob)
	}

	return fs, nil
}

// Matches reports whether the entry satisfies every active filter.
// Directories never match; they are traversed, not reported. With no filters
// active, every file matches. Size bounds are inclusive, and a minimum above
// the maximum yields a set that matches nothing.
func (f *FilterSet) Matches(e fstree.Entry) bool {
	if e.Dir {
		return false
	}

	if f.ext != "" && !hasSuffix(e.Name, f.ext, f.ignoreCase) {
		return false
	}

	if f.re != nil && !f.re.MatchString(f.matchPath(e)) {
		return false
	}

	if f.minSize != nil && e.Size < *f.minSize {
		return false
	}
	if f.maxSize != nil && e.Size > *f.maxSize {
		return false
	}

	if len(f.excludes) > 0 {
		name := f.matchPath(e)
		if f.ignoreCase {
			name = strings.ToLower(name)
		}
		for _, glob := range f.excludes {
			// Globs were validated at construction.
			if ok, _ := doublestar.Match(glob, name); ok {
				return false
			}
		}
	}

	return true
}

// matchPath is the string the pattern and exclude filters apply to: the
// bare filename by default, the root-relative path with FullPath.
func (f *FilterSet) matchPath(e fstree.Entry) string {
	if f.fullPath {
		return filepath.ToSlash(e.Rel)
	}
	return e.Name
}

func hasSuffix(s, suffix string, fold bool) bool {
	if !fold {
		return strings.HasSuffix(s, suffix)
	}
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
