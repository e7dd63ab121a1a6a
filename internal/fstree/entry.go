// Package fstree enumerates local directory trees for the finder.
package fstree

// Entry represents a file or directory encountered during a walk.
type Entry struct {
	Path  string // path as joined from the walk root argument
	Rel   string // path relative to the walk root ("." for the root itself)
	Name  string // basename
	Depth int    // containment steps from the root; the root is depth 0
	Dir   bool
	Size  int64 // size in bytes; zero for directories
}
