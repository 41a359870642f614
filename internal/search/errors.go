package search

import (
	"errors"
	"fmt"

	"github.com/harrison/rgrep/internal/fileutil"
	"github.com/harrison/rgrep/internal/linesource"
	"github.com/harrison/rgrep/internal/report"
)

// UsageError reports a directory target given without recursion. Nothing is scanned.
type UsageError struct {
	Path string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return fmt.Sprintf("path is a directory, use -r/--recursive to search recursively: %s", e.Path)
}

// InvalidPathError reports a target that is neither a regular file nor a directory.
type InvalidPathError struct {
	Path string
	Err  error // Underlying stat error (optional)
}

// Error implements the error interface for InvalidPathError.
func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid path: %s", e.Path)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// IsSkippable reports whether err only aborts the scan of one file during a
// recursive search. Open, decode and traversal failures are skippable; output
// failures and everything else are not.
func IsSkippable(err error) bool {
	var openErr *linesource.FileOpenError
	var decodeErr *linesource.LineDecodeError
	var travErr *fileutil.TraversalError
	var outErr *report.OutputError

	if errors.As(err, &outErr) {
		return false
	}
	return errors.As(err, &openErr) || errors.As(err, &decodeErr) || errors.As(err, &travErr)
}
