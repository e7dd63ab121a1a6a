package fstree

import (
	"fmt"
	"os"
	"path/filepath"
)

// Walker performs a depth-first, pre-order descent over a directory tree.
// A zero Walker visits nothing below the root; set MaxDepth to bound the
// descent (children of the root are depth 1).
type Walker struct {
	// MaxDepth is the deepest entry depth that will be visited. A
	// directory's children are not listed when they would sit beyond it.
	MaxDepth int

	// OnError is invoked for entries below the root that cannot be read
	// (permission denied, removed between listing and stat). The offending
	// entry or subtree is skipped and the walk continues. May be nil.
	OnError func(path string, err error)
}

// Walk visits every entry under root up to MaxDepth, calling visit for each
// in pre-order: an entry is visited before any of its children, and a
// directory's subtree is exhausted before its next sibling. Sibling order is
// whatever the directory listing yields.
//
// A root that does not exist, is not a directory, or cannot be read is a
// fatal error; read failures below the root are routed through OnError and
// skipped.
func (w *Walker) Walk(root string, visit func(Entry)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %q is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("root path %q: %w", root, err)
	}

	visit(Entry{Path: root, Rel: ".", Name: filepath.Base(root), Depth: 0, Dir: true})
	if w.MaxDepth >= 1 {
		w.visitChildren(root, ".", 0, entries, visit)
	}
	return nil
}

// walkDir lists the children of a directory below the root; its read
// failures are recoverable.
func (w *Walker) walkDir(dir, rel string, depth int, visit func(Entry)) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.errorf(dir, err)
		return
	}
	w.visitChildren(dir, rel, depth, entries, visit)
}

// visitChildren visits the listed children of a directory sitting at depth
// and recurses into child directories whose own children would still be
// within MaxDepth.
func (w *Walker) visitChildren(dir, rel string, depth int, entries []os.DirEntry, visit func(Entry)) {
	childDepth := depth + 1
	for _, de := range entries {
		e := Entry{
			Path:  filepath.Join(dir, de.Name()),
			Rel:   filepath.Join(rel, de.Name()),
			Name:  de.Name(),
			Depth: childDepth,
			Dir:   de.IsDir(),
		}

		if !e.Dir {
			info, err := de.Info()
			if err != nil {
				w.errorf(e.Path, err)
				continue
			}
			e.Size = info.Size()
		}

		visit(e)

		if e.Dir && childDepth+1 <= w.MaxDepth {
			w.walkDir(e.Path, e.Rel, childDepth, visit)
		}
	}
}

func (w *Walker) errorf(path string, err error) {
	if w.OnError != nil {
		w.OnError(path, err)
	}
}
