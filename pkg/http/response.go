package http

import "strings"

// Response is an outgoing HTTP response.
type Response struct {
	Version    string          // "HTTP/1.1"
	StatusCode int             // 200, 404, etc.
	Reason     string          // "OK", "Not Found"; may be empty
	Headers    ResponseHeaders // ordered, repeatable headers
	Body       []byte          // raw body (nil if none)
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// ResponseHeaders is an ordered, repeatable list of response headers.
// Lookups are case-insensitive but the original case is written out.
type ResponseHeaders []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h ResponseHeaders) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Add appends a header without replacing existing ones.
func (h *ResponseHeaders) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Clone returns a deep copy of the headers.
func (h ResponseHeaders) Clone() ResponseHeaders {
	if h == nil {
		return nil
	}
	clone := make(ResponseHeaders, len(h))
	copy(clone, h)
	return clone
}
