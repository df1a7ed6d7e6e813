// Package scaffold drives a project generation run: it builds the
// skeleton, materializes it under the project root, and emits the
// auxiliary files in a fixed order.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrInvalidWorkDir indicates an empty working directory in Options.
	ErrInvalidWorkDir = errors.New("scaffold: working directory required")

	// ErrInvalidProjectName indicates a project name that is not a single path segment.
	ErrInvalidProjectName = errors.New("scaffold: invalid project name")
)
