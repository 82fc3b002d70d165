package http

import (
	"fmt"
	"io"
)

// UnmarshalRequest parses raw request bytes. See ParseRequest.
//
// Headers are available via req.Header:
//
//	req.Header("Content-Type") // "text/plain"
//	req.Header("Host")         // "example.com"
//
// The query string is not split off or decoded:
//
//	// GET /api/users?id=7 HTTP/1.1  →  req.Path() = "api/users?id=7"
func UnmarshalRequest(data []byte) (*Request, error) {
	return ParseRequest(string(data))
}

// ParseRequestReader reads all data from r and parses it as a request.
func ParseRequestReader(r io.Reader) (*Request, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("http: read request: %w", err)
	}
	return UnmarshalRequest(data)
}
