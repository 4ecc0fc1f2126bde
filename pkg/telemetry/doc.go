// Package telemetry configures structured logging for quarry.
//
// It wraps zerolog with a small Logger type that carries per-component
// context fields, so library packages can log under a stable
// "component" key while the CLI controls level, format and destination
// in one place.
package telemetry
