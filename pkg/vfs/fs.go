package vfs

// FS is the filesystem capability consumed by the resolver.
//
// Paths are absolute, slash-separated paths. Glob is anchored: the
// pattern is interpreted relative to dir, and matches are returned as
// absolute paths in lexical order.
type FS interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) (bool, error)

	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) (bool, error)

	// Glob expands pattern relative to dir and returns the matching
	// absolute paths, sorted lexically. Patterns may use doublestar
	// syntax (`*`, `?`, `**`, `{a,b}`). A missing anchor directory
	// yields an empty result, not an error.
	Glob(dir, pattern string) ([]string, error)

	// ReadFile reads the file at path and returns its contents.
	ReadFile(path string) ([]byte, error)
}
