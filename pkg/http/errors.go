package http

import (
	"errors"
	"fmt"
)

// ErrMalformedRequest is matched by every error that reports malformed
// request text. Use errors.Is to test for it.
var ErrMalformedRequest = errors.New("http: malformed request")

// ParseError represents an error that occurred during HTTP request parsing.
type ParseError struct {
	Message string // human-readable error message
	Line    int    // 1-indexed line number where error occurred (0 if unknown)
	Err     error  // underlying cause, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("http: parse error at line %d: %s", e.Line, msg)
	}
	return fmt.Sprintf("http: %s", msg)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrMalformedRequest as a match.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedRequest }

func newParseError(msg string, line int) *ParseError {
	return &ParseError{Message: msg, Line: line}
}

// VersionError reports a request line without a recognized protocol version.
// It is the only failure that aborts request assembly.
type VersionError struct {
	Input  string // the offending raw request text
	Reason string
}

// Error implements the error interface. The raw input is included verbatim,
// line terminators and all.
func (e *VersionError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return e.Reason + " in request " + e.Input
}

// Is reports ErrMalformedRequest as a match.
func (e *VersionError) Is(target error) bool { return target == ErrMalformedRequest }
