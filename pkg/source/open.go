package source

import (
	"os"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// Open opens a source file, mapping a missing file to FILE_NOT_FOUND.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}
