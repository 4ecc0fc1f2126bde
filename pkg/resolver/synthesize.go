package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quarry-build/quarry/pkg/manifest"
	"github.com/quarry-build/quarry/pkg/model"
)

// withManifestTarget returns a new project whose target list carries
// one additional synthesized target representing the manifest file
// itself, so the manifest can be edited and built as a first-class unit
// downstream. The input project is not modified.
func withManifestTarget(p model.Project) model.Project {
	return p.WithTarget(manifestTarget(p))
}

// manifestTarget builds the synthetic target for a resolved project.
func manifestTarget(p model.Project) model.Target {
	return model.Target{
		Name:     fmt.Sprintf("%s-Manifest", p.Name),
		Platform: model.PlatformMacOS,
		Product:  model.ProductStaticLibrary,
		BundleID: manifestBundleID(p.Name),
		Sources:  []string{filepath.Join(p.Path, manifest.ProjectFileName)},
	}
}

// manifestBundleID derives a bundle identifier for the synthetic
// target from the project name.
func manifestBundleID(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	return fmt.Sprintf("build.quarry.%s.manifest", sanitized)
}
