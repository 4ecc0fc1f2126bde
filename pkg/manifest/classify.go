package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/quarry-build/quarry/pkg/vfs"
)

// Kind identifies a manifest kind present in a directory.
type Kind string

const (
	// KindProject marks a directory containing a project manifest.
	KindProject Kind = "project"

	// KindWorkspace marks a directory containing a workspace manifest.
	KindWorkspace Kind = "workspace"
)

// Classifier reports which manifest kinds a directory contains.
type Classifier interface {
	Classify(dir string) ([]Kind, error)
}

// HasKind reports whether kinds contains k.
func HasKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// FSClassifier classifies directories by probing for manifest files
// through the filesystem capability.
type FSClassifier struct {
	fs vfs.FS
}

// NewFSClassifier returns a Classifier backed by fs.
func NewFSClassifier(fs vfs.FS) *FSClassifier {
	return &FSClassifier{fs: fs}
}

// Classify implements Classifier.
func (c *FSClassifier) Classify(dir string) ([]Kind, error) {
	probes := []struct {
		name string
		kind Kind
	}{
		{ProjectFileName, KindProject},
		{WorkspaceFileName, KindWorkspace},
	}

	var kinds []Kind
	for _, p := range probes {
		ok, err := c.fs.Exists(filepath.Join(dir, p.name))
		if err != nil {
			return nil, fmt.Errorf("manifest: classify %q: %w", dir, err)
		}
		if ok {
			kinds = append(kinds, p.kind)
		}
	}

	return kinds, nil
}
