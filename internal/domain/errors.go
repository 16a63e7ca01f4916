package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Client-side classification of a failed notification call.
var (
	// ErrInvalidResponse is returned for a non-success response without a status
	// code, or a success response without a body.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrEncodingFailed is returned when a request body cannot be serialized.
	ErrEncodingFailed = errors.New("encoding failed")
	// ErrInvalidConfig is returned when a call configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnimplemented is returned by stand-in clients that must not be called.
	ErrUnimplemented = errors.New("unimplemented")
)

// ServerError is a non-success response that carried a status code.
type ServerError struct {
	Code int
	Body []byte
}

func (e *ServerError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("server error: status %d", e.Code)
	}
	return fmt.Sprintf("server error: status %d: %s", e.Code, truncate(e.Body, 256))
}

// DecodingError wraps a malformed JSON body or timestamp.
type DecodingError struct {
	Cause error
}

func (e *DecodingError) Error() string { return "decoding error: " + e.Cause.Error() }

func (e *DecodingError) Unwrap() error { return e.Cause }

// PlatformError wraps a failure reported by the platform permission API.
// Unwrap returns the platform error unchanged.
type PlatformError struct {
	Err error
}

func (e *PlatformError) Error() string { return "platform error: " + e.Err.Error() }

func (e *PlatformError) Unwrap() error { return e.Err }

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
