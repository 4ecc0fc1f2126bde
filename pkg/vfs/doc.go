// Package vfs provides the filesystem capability used by the manifest
// resolver. It exposes the three operations resolution needs (existence
// check, directory check, anchored glob expansion) plus file reading for
// manifest loading, behind an interface so tests can run against an
// in-memory filesystem.
//
// The default implementation is backed by go-billy, which supplies both
// the OS filesystem and the in-memory filesystem used in tests. Glob
// expansion is performed with doublestar so patterns may use `**` to
// match across directory boundaries.
package vfs
