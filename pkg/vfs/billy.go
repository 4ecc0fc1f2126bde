package vfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFS implements FS on top of a go-billy filesystem.
type BillyFS struct {
	fs billy.Filesystem
}

// NewOSFS returns an FS backed by the operating system filesystem,
// rooted at /. All paths passed to it must be absolute.
func NewOSFS() *BillyFS {
	return &BillyFS{fs: osfs.New("/")}
}

// NewInMemoryFS returns an FS backed by an in-memory filesystem.
func NewInMemoryFS() *BillyFS {
	return &BillyFS{fs: memfs.New()}
}

// NewBillyFS wraps an arbitrary go-billy filesystem.
func NewBillyFS(fsys billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fsys}
}

// Exists implements FS.Exists.
func (b *BillyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("vfs: stat %q: %w", path, err)
	}
}

// IsDirectory implements FS.IsDirectory.
func (b *BillyFS) IsDirectory(path string) (bool, error) {
	info, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return info.IsDir(), nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("vfs: stat %q: %w", path, err)
	}
}

// Glob implements FS.Glob by walking dir and matching each entry's
// anchor-relative path against pattern.
func (b *BillyFS) Glob(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("vfs: glob %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var matches []string
	err := util.Walk(b.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// A missing anchor is an empty result, not a failure.
			if os.IsNotExist(err) && path == dir {
				return nil
			}
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == "." {
			return nil
		}
		ok, err := doublestar.PathMatch(pattern, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("vfs: match %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vfs: glob %q in %q: %w", pattern, dir, err)
	}

	// Downstream project-file formats are ordering-sensitive; keep the
	// result reproducible for a fixed filesystem snapshot.
	sort.Strings(matches)
	return matches, nil
}

// ReadFile implements FS.ReadFile.
func (b *BillyFS) ReadFile(path string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("vfs: readfile %q: %w", path, err)
	}
	return bts, nil
}

// Raw returns the underlying go-billy filesystem, for callers that need
// operations beyond the FS capability (for example test fixtures).
//
//nolint:ireturn // exposes the adapter target on purpose.
func (b *BillyFS) Raw() billy.Filesystem {
	return b.fs
}
