package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/quarry-build/quarry/pkg/diag"
	"github.com/quarry-build/quarry/pkg/manifest"
	"github.com/quarry-build/quarry/pkg/model"
	"github.com/quarry-build/quarry/pkg/telemetry"
	"github.com/quarry-build/quarry/pkg/vfs"
)

// Resolver turns manifest values into resolved model values. It holds
// only injected collaborators and no per-call state, so a single
// Resolver may serve concurrent callers.
type Resolver struct {
	source     manifest.Source
	classifier manifest.Classifier
	fs         vfs.FS
	sink       diag.Sink
	log        *telemetry.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSink sets the diagnostic sink. Defaults to discarding warnings.
func WithSink(sink diag.Sink) Option {
	return func(r *Resolver) { r.sink = sink }
}

// WithLogger sets the resolver's logger.
func WithLogger(log *telemetry.Logger) Option {
	return func(r *Resolver) { r.log = log.NewComponentLogger("resolver") }
}

// New creates a Resolver over the given collaborators.
func New(source manifest.Source, classifier manifest.Classifier, fs vfs.FS, opts ...Option) *Resolver {
	r := &Resolver{
		source:     source,
		classifier: classifier,
		fs:         fs,
		sink:       diag.Discard{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		quiet, _ := telemetry.NewLogger(telemetry.LoggingConfig{Level: "fatal", Output: "stderr"})
		r.log = quiet
	}
	return r
}

// LoadProject resolves the project manifest in the directory at path.
// A relative path is resolved against the process working directory, so
// every path in the returned project is absolute. The returned project
// carries the declared targets in declaration order plus the
// synthesized manifest target appended last.
func (r *Resolver) LoadProject(path string) (model.Project, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("resolve project path %q: %w", path, err)
	}
	r.log.Debugf("loading project at %s", dir)

	m, err := r.source.LoadProject(dir)
	if err != nil {
		return model.Project{}, fmt.Errorf("load project %q: %w", dir, err)
	}

	s := r.newSession()
	project, err := s.translateProject(m, dir)
	if err != nil {
		return model.Project{}, err
	}

	return withManifestTarget(project), nil
}

// LoadWorkspace resolves the workspace manifest in the directory at
// path. A relative path is resolved against the process working
// directory. Member projects are returned as confirmed root directories
// only; callers load each member individually via LoadProject.
func (r *Resolver) LoadWorkspace(path string) (model.Workspace, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return model.Workspace{}, fmt.Errorf("resolve workspace path %q: %w", path, err)
	}
	r.log.Debugf("loading workspace at %s", dir)

	m, err := r.source.LoadWorkspace(dir)
	if err != nil {
		return model.Workspace{}, fmt.Errorf("load workspace %q: %w", dir, err)
	}

	return r.newSession().assembleWorkspace(m, dir, r.classifier)
}

// newSession creates the per-call resolution state. Sessions memoize
// glob expansions so one call never expands the same pattern twice, and
// never outlive the call that created them.
func (r *Resolver) newSession() *session {
	return &session{
		fs:     r.fs,
		sink:   r.sink,
		globs:  make(map[string][]string),
		warned: make(map[string]bool),
	}
}
