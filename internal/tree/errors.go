// Package tree models a project skeleton as a tagged union of directories
// and files, decodes it from YAML, and materializes it onto a filesystem.
package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tree package.
var (
	// ErrFilesystem marks every failure reported by the underlying filesystem
	// (permission denied, a file where a directory is expected, disk full).
	ErrFilesystem = errors.New("tree: filesystem operation failed")

	// ErrInvalidName indicates an entry name that is not a single path segment.
	ErrInvalidName = errors.New("tree: invalid entry name")

	// ErrInvalidLayout indicates a YAML layout that does not describe a tree.
	ErrInvalidLayout = errors.New("tree: invalid layout")
)

// FSError records a failed filesystem operation and the path it touched.
type FSError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *FSError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFilesystem, so callers can classify
// failures without inspecting the wrapped *os.PathError.
func (e *FSError) Is(target error) bool {
	return target == ErrFilesystem
}
