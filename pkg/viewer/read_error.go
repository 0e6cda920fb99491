package viewer

import (
	"errors"
	"fmt"

	"github.com/datatug/pathview/pkg/files"
)

type Kind int

const (
	KindOther Kind = iota
	KindPathNotFound
	KindPermissionDenied
	KindNotAFile
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindPathNotFound:
		return "path not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindNotAFile:
		return "not a file"
	case KindDecode:
		return "decode error"
	default:
		return "read error"
	}
}

// ReadError is returned by FileViewer.Read.
type ReadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func newReadError(path string, err error) *ReadError {
	classified := files.Classify(err)
	kind := KindOther
	switch {
	case errors.Is(classified, files.ErrPathNotFound):
		kind = KindPathNotFound
	case errors.Is(classified, files.ErrPermissionDenied):
		kind = KindPermissionDenied
	case errors.Is(classified, files.ErrNotAFile):
		kind = KindNotAFile
	case errors.Is(classified, files.ErrDecode):
		kind = KindDecode
	}
	if classified != err {
		err = fmt.Errorf("%w: %w", classified, err)
	}
	return &ReadError{Path: path, Kind: kind, Err: err}
}
