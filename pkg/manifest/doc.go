// Package manifest defines the declarative manifest values authored by
// users and the services that produce them: a Source that deserializes
// Project.yml / Workspace.yml files, and a Classifier that reports
// which manifest kinds a directory contains.
//
// Manifest values are untrusted and transient. Paths and globs they
// carry are relative to the manifest's containing directory; the
// resolver (pkg/resolver) anchors and validates them against the
// filesystem to build the domain graph in pkg/model.
package manifest
