package textaccel

import (
	"errors"
	"fmt"

	"github.com/hupe1980/textaccel/fileio"
)

var (
	// ErrInvalidArgument indicates a malformed input, e.g. an empty path.
	// It marks a caller contract violation; retrying cannot help.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileAccess indicates an environment failure: the path is missing,
	// unreadable, or an I/O error occurred. Retry policy is the caller's.
	ErrFileAccess = errors.New("file access")
)

// translateError normalizes leaf-package errors into the two public error
// kinds. The original error remains reachable via errors.Is/As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fileio.ErrEmptyPath) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var ae *fileio.AccessError
	if errors.As(err, &ae) {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	return err
}
