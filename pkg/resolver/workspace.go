package resolver

import (
	"fmt"

	"github.com/quarry-build/quarry/pkg/manifest"
	"github.com/quarry-build/quarry/pkg/model"
)

// assembleWorkspace expands each declared project pattern and keeps
// only candidates that pass the two-stage filter: the candidate is a
// directory, and the classifier confirms it contains a project
// manifest. Candidates failing either stage are silently excluded; a
// pattern whose final result is empty produces a warning, not an error.
func (s *session) assembleWorkspace(m *manifest.Workspace, dir string, classifier manifest.Classifier) (model.Workspace, error) {
	var projects []string
	for _, pattern := range m.Projects {
		candidates, err := s.expand(dir, pattern)
		if err != nil {
			return model.Workspace{}, err
		}

		var kept []string
		for _, candidate := range candidates {
			isDir, err := s.fs.IsDirectory(candidate)
			if err != nil {
				return model.Workspace{}, fmt.Errorf("candidate %q: %w", candidate, err)
			}
			if !isDir {
				continue
			}

			kinds, err := classifier.Classify(candidate)
			if err != nil {
				return model.Workspace{}, fmt.Errorf("classify %q: %w", candidate, err)
			}
			if manifest.HasKind(kinds, manifest.KindProject) {
				kept = append(kept, candidate)
			}
		}

		if len(kept) == 0 {
			s.warnEmpty(pattern)
		}
		projects = append(projects, kept...)
	}

	additional, err := s.translateFileElements(m.AdditionalFiles, dir)
	if err != nil {
		return model.Workspace{}, err
	}

	return model.Workspace{
		Name:            m.Name,
		Projects:        projects,
		AdditionalFiles: additional,
	}, nil
}
