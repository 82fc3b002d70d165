package http

import (
	"strings"

	"github.com/shapestone/simple-http/internal/parser"
)

// bodySeparator ends the header block.
const bodySeparator = parser.CRLF + parser.CRLF

// ParseRequest assembles a Request from raw request text.
//
// The method is classified from the first word of the request line and never
// fails. A malformed target falls back to the root path and a malformed header
// block to empty headers. A missing or unrecognized protocol version fails the
// whole request with a *ParseError that wraps the *VersionError and matches
// ErrMalformedRequest.
func ParseRequest(raw string) (*Request, error) {
	rl := parser.Split(raw)
	req, _, err := assemble(raw, rl)
	return req, err
}

// ParseBody returns everything after the first blank line of raw, verbatim,
// or "" if raw has no blank line.
func ParseBody(raw string) string {
	_, body, _ := strings.Cut(raw, bodySeparator)
	return body
}

// fallbacks records which parsers failed and were replaced by defaults.
type fallbacks struct {
	resource error
	headers  error
}

func assemble(raw string, rl parser.RequestLine) (*Request, fallbacks, error) {
	var fb fallbacks

	method := ParseMethod(rl.FirstField())

	resource, err := resourceFromLine(rl)
	if err != nil {
		fb.resource = err
		resource = Resource{}
	}

	version, err := versionFromLine(rl, raw)
	if err != nil {
		return nil, fb, &ParseError{Message: "malformed request", Line: 1, Err: err}
	}

	headers, err := ParseHeaders(raw)
	if err != nil {
		fb.headers = err
		headers = Headers{}
	}

	return &Request{
		method:   method,
		resource: resource,
		version:  version,
		headers:  headers,
		body:     ParseBody(raw),
	}, fb, nil
}
