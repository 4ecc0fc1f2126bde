package resolver

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution error. Every kind aborts the whole
// LoadProject / LoadWorkspace call; the resolver has no recoverable
// errors.
type Kind string

const (
	// KindFeatureNotSupported indicates the manifest references a
	// capability the generator does not implement yet.
	KindFeatureNotSupported Kind = "feature_not_supported"

	// KindMissingFile indicates a mandatory singular filesystem
	// reference does not exist.
	KindMissingFile Kind = "missing_file"
)

// Error is a classified resolution error.
type Error struct {
	// Kind is the error classification.
	Kind Kind `json:"kind"`

	// Detail is the human-readable description for feature gating
	// errors.
	Detail string `json:"detail,omitempty"`

	// Path is the missing path for missing-file errors.
	Path string `json:"path,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingFile:
		return fmt.Sprintf("[%s] couldn't find file at path %s", e.Kind, e.Path)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Detail)
	}
}

// Is implements error equality checking for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewFeatureNotSupportedError creates a feature gating error.
func NewFeatureNotSupportedError(detail string) *Error {
	return &Error{
		Kind:   KindFeatureNotSupported,
		Detail: detail,
	}
}

// NewMissingFileError creates a missing mandatory file error.
func NewMissingFileError(path string) *Error {
	return &Error{
		Kind: KindMissingFile,
		Path: path,
	}
}

// IsFeatureNotSupported returns true if the error is a feature gating
// error.
func IsFeatureNotSupported(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindFeatureNotSupported
	}
	return false
}

// IsMissingFile returns true if the error is a missing-file error.
func IsMissingFile(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindMissingFile
	}
	return false
}
