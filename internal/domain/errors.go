package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrCloneFailed indicates the clone backend reported a failure
	ErrCloneFailed = errors.New("clone failed")

	// ErrAborted indicates the clone was aborted from the progress callback
	ErrAborted = errors.New("clone aborted")

	// ErrInvalidSource indicates an empty or malformed source URL
	ErrInvalidSource = errors.New("invalid source")

	// ErrInvalidDestination indicates the destination path cannot be used
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrUnknownStarter indicates the requested starter template is not configured
	ErrUnknownStarter = errors.New("unknown starter")

	// ErrProbeFailed indicates the remote could not be listed
	ErrProbeFailed = errors.New("probe failed")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")
)

// CloneError wraps a failure reported by the clone backend
type CloneError struct {
	URL  string
	Path string
	Err  error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("clone of %s into %s failed: %v", e.URL, e.Path, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// Is reports ErrCloneFailed for every CloneError
func (e *CloneError) Is(target error) bool {
	return target == ErrCloneFailed
}

// NewCloneError creates a new CloneError
func NewCloneError(url, path string, err error) *CloneError {
	return &CloneError{
		URL:  url,
		Path: path,
		Err:  err,
	}
}

// ProbeError represents a failure listing a remote
type ProbeError struct {
	URL string
	Err error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe of %s failed: %v", e.URL, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Is reports ErrProbeFailed for every ProbeError
func (e *ProbeError) Is(target error) bool {
	return target == ErrProbeFailed
}

// NewProbeError creates a new ProbeError
func NewProbeError(url string, err error) *ProbeError {
	return &ProbeError{
		URL: url,
		Err: err,
	}
}

// RetryableError indicates an error that can be retried
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried.
// Clone failures are never retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, ErrCloneFailed) || errors.Is(err, ErrAborted) {
		return false
	}

	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}

	return errors.Is(err, ErrTimeout)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
