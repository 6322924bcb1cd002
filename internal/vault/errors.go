package vault

import (
	"errors"
	"fmt"
	"io/fs"
)

type (
	// PathEscapeError reports a request that resolved outside the vault root.
	PathEscapeError struct {
		Path string
	}

	// DirectoryReadError reports a directory that could not be read during a
	// listing or traversal. It wraps the underlying OS error.
	DirectoryReadError struct {
		Path string
		Err  error
	}
)

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("path traversal not allowed: %s", e.Path)
}

func (e *DirectoryReadError) Error() string {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return fmt.Sprintf("directory not found: %s", e.Path)
	case errors.Is(e.Err, fs.ErrPermission):
		return fmt.Sprintf("permission denied: %s", e.Path)
	default:
		return fmt.Sprintf("failed to read directory: %s - %v", e.Path, e.Err)
	}
}

func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}
