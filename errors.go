package clouddrop

import (
	"fmt"
	"strings"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrUnknownProvider - no provider is registered under the requested name
	ErrUnknownProvider = Error("unknown provider")

	// ErrNotFound - the remote path or id does not exist
	ErrNotFound = Error("file not found")

	// ErrCancelled - the operation's context was cancelled
	ErrCancelled = Error("operation cancelled")

	// ErrTimeout - the operation's deadline expired
	ErrTimeout = Error("operation timed out")
)

// UnknownProviderError is returned by a registry asked for a provider name it does not know.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownProvider, e.Name)
}

// Is reports whether target is ErrUnknownProvider.
func (e *UnknownProviderError) Is(target error) bool {
	return target == ErrUnknownProvider
}

// FileNotFoundError is returned when the provider reports that Path does not exist.
type FileNotFoundError struct {
	Path    string
	Summary string
}

func (e *FileNotFoundError) Error() string {
	if e.Summary == "" {
		return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrNotFound, e.Path, e.Summary)
}

// Is reports whether target is ErrNotFound.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RemoteAPIError is any non-success response from the provider that is not a not-found.
type RemoteAPIError struct {
	Route      string
	StatusCode int
	Summary    string
	Body       []byte
}

func (e *RemoteAPIError) Error() string {
	summary := e.Summary
	if summary == "" {
		summary = strings.TrimSpace(string(e.Body))
	}
	return fmt.Sprintf("remote api error: %s returned status %d: %s", e.Route, e.StatusCode, summary)
}

// TransportError is a network-level failure: the request never produced a response.
type TransportError struct {
	Route string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Route, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// WriteError is returned when downloaded contents cannot be written to the local filesystem.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// CancelledError is returned when the caller's context is cancelled mid-operation. It matches
// both ErrCancelled and context.Canceled.
type CancelledError struct {
	Route string
	Err   error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCancelled, e.Route, e.Err)
}

// Is reports whether target is ErrCancelled.
func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}

func (e *CancelledError) Unwrap() error { return e.Err }

// TimeoutError is returned when the caller's deadline or the transport's timeout expires. It
// matches ErrTimeout and, when caused by a context, context.DeadlineExceeded.
type TimeoutError struct {
	Route string
	Err   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrTimeout, e.Route, e.Err)
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

func (e *TimeoutError) Unwrap() error { return e.Err }
