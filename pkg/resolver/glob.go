package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quarry-build/quarry/pkg/diag"
	"github.com/quarry-build/quarry/pkg/vfs"
)

// session holds the state of a single LoadProject / LoadWorkspace call:
// the injected capabilities plus per-call memoization. It is discarded
// when the call returns.
type session struct {
	fs   vfs.FS
	sink diag.Sink

	// globs memoizes raw expansions so a pattern is never expanded
	// twice within one call.
	globs map[string][]string

	// warned tracks patterns already reported as empty, so each pattern
	// produces at most one diagnostic per call.
	warned map[string]bool
}

// includeFn filters glob matches after expansion.
type includeFn func(path string) (bool, error)

// glob expands pattern relative to anchor, applies the optional include
// predicate, and warns (non-fatally) when the filtered result is empty.
func (s *session) glob(anchor, pattern string, include includeFn) ([]string, error) {
	matches, err := s.expand(anchor, pattern)
	if err != nil {
		return nil, err
	}

	filtered := matches
	if include != nil {
		filtered = make([]string, 0, len(matches))
		for _, m := range matches {
			ok, err := include(m)
			if err != nil {
				return nil, err
			}
			if ok {
				filtered = append(filtered, m)
			}
		}
	}

	if len(filtered) == 0 {
		s.warnEmpty(pattern)
	}
	return filtered, nil
}

// expand returns the memoized raw expansion of pattern under anchor.
func (s *session) expand(anchor, pattern string) ([]string, error) {
	key := anchor + "\x00" + pattern
	if cached, ok := s.globs[key]; ok {
		return cached, nil
	}

	matches, err := s.fs.Glob(anchor, pattern)
	if err != nil {
		return nil, fmt.Errorf("expand %q in %q: %w", pattern, anchor, err)
	}
	s.globs[key] = matches
	return matches, nil
}

// warnEmpty reports an empty glob result, at most once per pattern.
func (s *session) warnEmpty(pattern string) {
	if s.warned[pattern] {
		return
	}
	s.warned[pattern] = true
	s.sink.Warn(diag.Warning{
		Message: "glob pattern matched no files",
		Path:    pattern,
	})
}

// isFile includes only regular files.
func (s *session) isFile(path string) (bool, error) {
	isDir, err := s.fs.IsDirectory(path)
	if err != nil {
		return false, err
	}
	return !isDir, nil
}

// isDirectory includes only directories.
func (s *session) isDirectory(path string) (bool, error) {
	return s.fs.IsDirectory(path)
}

// nonResourceExtensions are file extensions that never count as
// resources even when a resource glob matches them.
var nonResourceExtensions = map[string]bool{
	".swift": true,
	".h":     true,
	".hpp":   true,
	".m":     true,
	".mm":    true,
	".c":     true,
	".cc":    true,
	".cpp":   true,
}

// isResource includes regular files whose extension is not a known
// source-code extension.
func (s *session) isResource(path string) (bool, error) {
	ok, err := s.isFile(path)
	if err != nil || !ok {
		return false, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	return !nonResourceExtensions[ext], nil
}
