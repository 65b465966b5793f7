package paths

import (
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

// Sanitize checks that name is a single normal path component and returns
// it unchanged. Names are rejected, never corrected.
func Sanitize(name string) (string, error) {
	if !IsValidName(name) {
		return "", &kerrors.NameError{Name: name}
	}
	return name, nil
}

// IsValidName reports whether name can be used as a key, application name
// or scope: non-empty, not . or .., no separators, no NUL, not absolute.
func IsValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	// Both separators, regardless of platform.
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return false
	}
	return true
}
