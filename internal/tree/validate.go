package tree

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ValidateName checks that name is a single path segment: non-empty, not
// "." or "..", free of separators, and in Unicode NFC form so the same
// name cannot appear twice under different byte encodings.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidName, name)
	}
	if !norm.NFC.IsNormalString(name) {
		return fmt.Errorf("%w: %q is not NFC-normalized", ErrInvalidName, name)
	}
	return nil
}
