// Package diag carries non-fatal diagnostics out of the manifest
// resolver. Conditions like a glob pattern matching nothing are
// observability, not failure: resolution continues with an empty result
// and the condition is reported through a Sink instead of an error.
package diag
