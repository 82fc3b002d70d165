package http

import "github.com/shapestone/simple-http/internal/parser"

// Version is a recognized protocol version. Values are only produced by a
// successful ParseVersion; the zero value is not a version.
type Version uint8

const (
	HTTP11 Version = iota + 1
	HTTP20
)

var versionTokens = map[string]Version{
	"HTTP/1.1": HTTP11,
	"HTTP/2.0": HTTP20,
}

// String returns the protocol token, e.g. "HTTP/1.1", or "" for the zero value.
func (v Version) String() string {
	switch v {
	case HTTP11:
		return "HTTP/1.1"
	case HTTP20:
		return "HTTP/2.0"
	default:
		return ""
	}
}

// IsValid reports whether v is a recognized version.
func (v Version) IsValid() bool {
	return v == HTTP11 || v == HTTP20
}

// ParseVersion scans the whitespace-delimited tokens of the request line of
// raw, left to right, and returns the first one that is exactly "HTTP/1.1" or
// "HTTP/2.0". Token position does not matter.
//
// It fails with a *VersionError carrying raw when the request line is missing
// or has no recognized token.
func ParseVersion(raw string) (Version, error) {
	return versionFromLine(parser.Split(raw), raw)
}

func versionFromLine(rl parser.RequestLine, raw string) (Version, error) {
	if !rl.Present() {
		return 0, &VersionError{Input: raw, Reason: "missing request line"}
	}
	for _, field := range rl.Fields {
		if v, ok := versionTokens[field]; ok {
			return v, nil
		}
	}
	return 0, &VersionError{Input: raw, Reason: "no recognized protocol version"}
}
