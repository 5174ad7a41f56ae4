package proofkit

import (
	"errors"
	"fmt"
)

// Common validation errors
var (
	ErrIsDir            = errors.New("is a directory")
	ErrNotSupported     = errors.New("operation not supported")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrInvalidConfig    = errors.New("invalid config")
)

// ErrorKind identifies the step of validation that failed.
type ErrorKind string

const (
	// ErrorKindOpen covers missing files, permission problems and paths
	// that are not regular readable files.
	ErrorKindOpen ErrorKind = "open"

	// ErrorKindRead covers I/O failures after the file was opened.
	ErrorKindRead ErrorKind = "read"
)

// ValidationError records why a file could not be validated.
type ValidationError struct {
	// Kind is the failed step.
	Kind ErrorKind

	// Path is the path that was being validated.
	Path string

	// Err is the underlying OS-level error.
	Err error
}

// Error renders the message reported to the host in the record's error field.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Failed to %s file: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newOpenError(path string, err error) *ValidationError {
	return &ValidationError{Kind: ErrorKindOpen, Path: path, Err: err}
}

func newReadError(path string, err error) *ValidationError {
	return &ValidationError{Kind: ErrorKindRead, Path: path, Err: err}
}

// IsOpenError reports whether err is a ValidationError raised while opening
func IsOpenError(err error) bool {
	return isKind(err, ErrorKindOpen)
}

// IsReadError reports whether err is a ValidationError raised while reading
func IsReadError(err error) bool {
	return isKind(err, ErrorKindRead)
}

func isKind(err error, kind ErrorKind) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind == kind
	}
	return false
}
