// Package http parses raw HTTP/1.1 request text into an immutable Request.
//
// A request is assembled from four independent parsers that each read the
// same raw text:
//
//   - ParseMethod classifies the first word of the request line
//   - ParseResource extracts the request target
//   - ParseVersion finds the protocol token
//   - ParseHeaders splits the header block
//
// ParseRequest combines them. Only a missing or unrecognized protocol version
// fails the request; a bad target or header block falls back to the root path
// or empty headers. Inspect reports those fallbacks as warnings.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call works on its own input and shares no mutable state.
//
// # Parsing APIs
//
// The package provides multiple parsing paths:
//
//   - ParseRequest/UnmarshalRequest/ParseRequestReader - Request assembly
//   - Parse - AST-based result via shape-core
//   - Inspect - Request assembly plus warnings for absorbed failures
//   - Validate - Strict check with no fallbacks
package http

// Request is a parsed HTTP request. It is read-only once constructed and
// always carries a valid Version.
type Request struct {
	method   Method
	resource Resource
	version  Version
	headers  Headers
	body     string
}

// Method returns the classified request method.
func (r *Request) Method() Method { return r.method }

// Resource returns the requested resource.
func (r *Request) Resource() Resource { return r.resource }

// Path returns the requested path without its leading slash.
func (r *Request) Path() string { return r.resource.Path }

// Version returns the protocol version.
func (r *Request) Version() Version { return r.version }

// Header returns the value of the named header, or "" if absent.
func (r *Request) Header(name string) string { return r.headers.Get(name) }

// Headers returns a copy of the request headers.
func (r *Request) Headers() Headers { return r.headers.Clone() }

// Body returns the raw text after the header block.
func (r *Request) Body() string { return r.body }

// ParseResult holds the result of Inspect.
type ParseResult struct {
	Request  *Request // nil if the protocol version could not be parsed
	Warnings []string // failures absorbed into defaults, and the fatal error if any
}
