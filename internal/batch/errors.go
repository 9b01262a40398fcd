package batch

import "fmt"

// ProcessError reports a per-file pipeline failure after retries were
// exhausted.
type ProcessError struct {
	Path    string
	Retries int
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing %s (after %d retries): %v", e.Path, e.Retries, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// DirectoryError reports a top-level per-directory failure.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("processing directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }
