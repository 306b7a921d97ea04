package store

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of a record server failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, timeout, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates a non-OK status code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// NetworkErrorSubtype provides more specific network error classification
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// RemoteError represents a failed exchange with the record server
type RemoteError struct {
	Type       ErrorType
	Subtype    NetworkErrorSubtype
	Message    string
	StatusCode int   // HTTP status code (ErrTypeHTTP only)
	Err        error // Underlying error (if any)
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network-level error and classifies its cause
func NewNetworkError(message string, err error) *RemoteError {
	return &RemoteError{
		Type:    ErrTypeNetwork,
		Subtype: classifyNetworkError(err),
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *RemoteError {
	return &RemoteError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *RemoteError {
	return &RemoteError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

func classifyNetworkError(err error) NetworkErrorSubtype {
	if err == nil {
		return NetworkErrorGeneral
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}

	if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) {
		return NetworkErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NetworkErrorDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return NetworkErrorConnectionRefused
	}

	return NetworkErrorGeneral
}

func asRemoteError(err error) (*RemoteError, bool) {
	var rErr *RemoteError
	if errors.As(err, &rErr) {
		return rErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	rErr, ok := asRemoteError(err)
	return ok && rErr.Type == ErrTypeNetwork
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	rErr, ok := asRemoteError(err)
	return ok && rErr.Type == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	rErr, ok := asRemoteError(err)
	return ok && rErr.Type == ErrTypeParse
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	rErr, ok := asRemoteError(err)
	if !ok {
		return err.Error()
	}

	switch rErr.Type {
	case ErrTypeNetwork:
		switch rErr.Subtype {
		case NetworkErrorTimeout:
			return "Record server not responding (timeout)"
		case NetworkErrorConnectionRefused:
			return "Record server refused connection - is it running?"
		case NetworkErrorDNS:
			return "Cannot resolve record server hostname"
		default:
			return "Network error - check connection"
		}
	case ErrTypeHTTP:
		return fmt.Sprintf("Record server error (HTTP %d)", rErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse record server response"
	default:
		return rErr.Message
	}
}
