package files

import (
	"errors"
	"io/fs"
)

var (
	ErrPathNotFound     = errors.New("path not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotADirectory    = errors.New("not a directory")
	ErrNotAFile         = errors.New("not a file")
	ErrDecode           = errors.New("not a text file")
)

// Classify maps file system errors to the package sentinels.
// Errors that already carry a sentinel, and unknown errors, are returned as is.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrPathNotFound),
		errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrNotADirectory),
		errors.Is(err, ErrNotAFile),
		errors.Is(err, ErrDecode):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return ErrPathNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return err
	}
}
