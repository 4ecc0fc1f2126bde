package manifest

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/quarry-build/quarry/pkg/vfs"
)

// Manifest file names probed for inside a directory.
const (
	ProjectFileName   = "Project.yml"
	WorkspaceFileName = "Workspace.yml"
)

// Source supplies parsed manifest values for a directory. The resolver
// trusts returned values as schema-valid.
type Source interface {
	// LoadProject returns the project manifest declared in dir.
	LoadProject(dir string) (*Project, error)

	// LoadWorkspace returns the workspace manifest declared in dir.
	LoadWorkspace(dir string) (*Workspace, error)
}

// YAMLSource loads manifests from Project.yml / Workspace.yml files
// through the filesystem capability, with strict decoding and struct
// validation.
type YAMLSource struct {
	fs       vfs.FS
	validate *validator.Validate
}

// NewYAMLSource returns a Source reading manifests from fs.
func NewYAMLSource(fs vfs.FS) *YAMLSource {
	return &YAMLSource{
		fs:       fs,
		validate: validator.New(),
	}
}

// LoadProject implements Source.LoadProject.
func (s *YAMLSource) LoadProject(dir string) (*Project, error) {
	var m Project
	if err := s.load(filepath.Join(dir, ProjectFileName), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadWorkspace implements Source.LoadWorkspace.
func (s *YAMLSource) LoadWorkspace(dir string) (*Workspace, error) {
	var m Workspace
	if err := s.load(filepath.Join(dir, WorkspaceFileName), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *YAMLSource) load(path string, out interface{}) error {
	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("manifest: read %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("manifest: decode %q: %w", path, err)
	}

	if err := s.validate.Struct(out); err != nil {
		return fmt.Errorf("manifest: validate %q: %w", path, err)
	}
	return nil
}
