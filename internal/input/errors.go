package input

import "fmt"

// UsageError is returned when no filename was given and standard input is
// an interactive terminal.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Message)
}

// UnreadablePathError is returned when a path argument cannot be read.
type UnreadablePathError struct {
	Path  string
	Cause error
}

func (e *UnreadablePathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file or directory %q is not readable: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("file or directory %q is not readable", e.Path)
}

func (e *UnreadablePathError) Unwrap() error {
	return e.Cause
}

// ResourceNotFoundError is returned when a resource alias cannot be resolved
// to a directory.
type ResourceNotFoundError struct {
	Alias string
	Cause error
}

func (e *ResourceNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource %q could not be located: %v", e.Alias, e.Cause)
	}
	return fmt.Sprintf("resource %q could not be located", e.Alias)
}

func (e *ResourceNotFoundError) Unwrap() error {
	return e.Cause
}
