package resolver

import "path/filepath"

// resolvePath anchors a manifest-relative path at the manifest's
// containing directory. It performs no existence check; malformed
// relative syntax is the path representation's concern, not ours.
func resolvePath(anchor, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(anchor, rel)
}
