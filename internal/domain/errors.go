package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnknownHost indicates no classifier rule matched the clone URL
	ErrUnknownHost = errors.New("unknown host")

	// ErrConflictingOptions indicates mutually exclusive clone options
	ErrConflictingOptions = errors.New("--mirror and --shallow are mutually exclusive")

	// ErrHomeNotSet indicates the home directory could not be resolved
	ErrHomeNotSet = errors.New("home directory not set")

	// ErrGitNotFound indicates no git binary is available on PATH
	ErrGitNotFound = errors.New("git binary not found")

	// ErrLinkExists indicates a bin link name is already taken by
	// something that does not point at the requested target
	ErrLinkExists = errors.New("link name already in use")
)

// ClassifyError reports a clone URL that no rule recognized. It wraps
// ErrUnknownHost so callers can match with errors.Is.
type ClassifyError struct {
	URL string
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("unknown host in clone URL %q", e.URL)
}

func (e *ClassifyError) Unwrap() error {
	return ErrUnknownHost
}

// NewClassifyError creates a new ClassifyError
func NewClassifyError(url string) *ClassifyError {
	return &ClassifyError{URL: url}
}

// CloneError reports a failed clone and carries the subprocess exit code
// so the CLI can forward it verbatim.
type CloneError struct {
	URL      string
	ExitCode int
	Err      error
}

func (e *CloneError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("clone of %s failed: exit status %d", e.URL, e.ExitCode)
	}
	return fmt.Sprintf("clone of %s failed: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// NewCloneError creates a new CloneError
func NewCloneError(url string, exitCode int, err error) *CloneError {
	return &CloneError{URL: url, ExitCode: exitCode, Err: err}
}

// ExitCode extracts the exit status to report for err. CloneErrors carry
// the subprocess status through unchanged; anything else is a plain
// failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cloneErr *CloneError
	if errors.As(err, &cloneErr) && cloneErr.ExitCode > 0 {
		return cloneErr.ExitCode
	}
	return 1
}
