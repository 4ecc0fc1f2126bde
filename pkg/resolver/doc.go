// Package resolver walks declarative manifest values and produces the
// fully resolved, filesystem-validated domain graph in pkg/model.
//
// The resolver anchors manifest-relative paths at the manifest's
// containing directory, expands glob patterns into concrete sorted file
// sets, validates singular mandatory assets, discovers nested project
// manifests for workspace assembly, and appends to every loaded project
// a synthetic target representing the manifest file itself.
//
// Each LoadProject / LoadWorkspace call is a single-shot synchronous
// pipeline with no state shared across calls. Failures abort the whole
// call; conditions that do not endanger generation (a glob matching
// nothing, a folder reference that is not a directory) are reported to
// the diagnostic sink and resolution continues with an empty result.
package resolver
