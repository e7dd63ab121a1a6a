package finder

// Options contains all search parameters. It is built once by the CLI layer
// and read-only afterwards.
type Options struct {
	Root       string   // directory to search from
	MaxDepth   int      // deepest entry depth to visit; root is depth 0
	Extension  string   // exact filename suffix, as typed (no dot handling)
	Pattern    string   // regular expression searched within the filename
	MinSize    *int64   // inclusive minimum file size in bytes (nil = no minimum)
	MaxSize    *int64   // inclusive maximum file size in bytes (nil = no maximum)
	IgnoreCase bool     // case-insensitive extension and pattern matching
	FullPath   bool     // match pattern and excludes against the root-relative path
	Excludes   []string // glob patterns removing otherwise-matching files
}
