package http

import (
	"bytes"
	"io"

	"github.com/shapestone/simple-http/internal/parser"
)

// Validate checks that input parses without any fallback: the protocol
// version is recognized, the request target is well formed and every header
// line has a colon. It does not evaluate the body.
// Returns nil if valid, or the first failure in that order.
func Validate(input string) error {
	rl := parser.Split(input)
	if _, err := versionFromLine(rl, input); err != nil {
		return &ParseError{Message: "malformed request", Line: 1, Err: err}
	}
	if _, err := resourceFromLine(rl); err != nil {
		return err
	}
	if _, err := ParseHeaders(input); err != nil {
		return err
	}
	return nil
}

// ValidateReader reads all data from r and validates it as a request.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return Validate(string(data))
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
