// Package model defines the resolved domain graph produced by the
// manifest resolver and consumed by the downstream project-file
// generator.
//
// Every path held by a model value is absolute; relative manifest paths
// never escape the resolver. Values are immutable once constructed:
// operations that "add" to a value (such as appending a target to a
// project) return a new value and leave the receiver untouched.
package model
