package http

import (
	"strings"

	"github.com/shapestone/simple-http/internal/parser"
)

// Resource is the requested path. The empty path is the root.
type Resource struct {
	Path string
}

// ParseResource extracts the request target from the request line of raw.
//
// The line is split on its first space into a method token and a remainder,
// and the remainder on its next space into the target and the protocol token.
// The target is trimmed and at most one leading "/" is removed.
//
// Parsing fails when the method token is not GET or POST, or when the line
// does not have two spaces.
func ParseResource(raw string) (Resource, error) {
	return resourceFromLine(parser.Split(raw))
}

func resourceFromLine(rl parser.RequestLine) (Resource, error) {
	if !rl.HasMethod {
		return Resource{}, newParseError("malformed request line: no method separator", 1)
	}
	if m := ParseMethod(rl.Method); !m.IsRecognized() {
		return Resource{}, newParseError("unrecognized method: "+rl.Method, 1)
	}
	if !rl.HasTarget {
		return Resource{}, newParseError("malformed request line: no version separator", 1)
	}

	target := strings.TrimSpace(rl.Target)
	return Resource{Path: strings.TrimPrefix(target, "/")}, nil
}
