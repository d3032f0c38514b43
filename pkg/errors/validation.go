package errors

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateNodeID validates a node ID supplied on the command line or in a
// configuration file (roots, highlights, chain start).
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node ID contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a render or snapshot output location.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name an existing directory
//   - The parent directory must exist
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "output directory %q", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "output parent %q is not a directory", dir)
	}
	return nil
}
