package http

import (
	"sort"
	"strings"

	"github.com/shapestone/simple-http/internal/parser"
)

// Headers maps header names to values. Names keep their original case and
// lookups are exact. Duplicate names keep the last value seen.
type Headers map[string]string

// Get returns the value for name, or "" if absent.
func (h Headers) Get(name string) string {
	return h[name]
}

// Lookup returns the value for name and whether it was present.
func (h Headers) Lookup(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}

// Len returns the number of distinct header names.
func (h Headers) Len() int {
	return len(h)
}

// Names returns the header names in sorted order.
func (h Headers) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the headers. The copy of a nil Headers is empty, not nil.
func (h Headers) Clone() Headers {
	clone := make(Headers, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}

// ParseHeaders parses the header block of raw: every line after the request
// line up to the first empty line. Each line is split on its first colon and
// both halves are trimmed.
//
// A single non-empty line without a colon fails the whole block.
func ParseHeaders(raw string) (Headers, error) {
	headers := Headers{}

	_, rest, found := strings.Cut(raw, parser.CRLF)
	if !found {
		return headers, nil
	}

	// line numbers are 1-indexed and the request line is line 1
	for i, line := range strings.Split(rest, parser.CRLF) {
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, newParseError("malformed header line (no colon): "+line, i+2)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}
