package models

import "errors"

var (
	// ErrInvalidInput marks input that cannot be read as a scene object,
	// material or other description.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an operation whose target path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExternalTool marks failures of tools outside this process, such as
	// a missing Unity executable. These are never retried.
	ErrExternalTool = errors.New("external tool failure")
)
