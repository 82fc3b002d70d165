package http

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/shapestone/simple-http/internal/parser"
)

// Inspect parses raw exactly like ParseRequest and additionally describes
// every failure that ParseRequest absorbs into a default value.
//
// result.Request is identical to what ParseRequest returns: nil when the
// protocol version is missing, in which case the version error is the last
// warning. Warnings are human-readable and in request order:
//
//	unrecognized method "PUT"
//	malformed request target, using root path: ...
//	malformed header block, headers dropped: ...
//	header name "Bad Name" is not a valid token
//	header "X-Ctl" has an invalid value
//	no blank line after headers, body is empty
func Inspect(raw string) *ParseResult {
	rl := parser.Split(raw)
	req, fb, err := assemble(raw, rl)

	result := &ParseResult{Request: req}
	warn := func(format string, args ...interface{}) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(format, args...))
	}

	if first := rl.FirstField(); rl.Present() && !ParseMethod(first).IsRecognized() {
		warn("unrecognized method %q", first)
	}
	if fb.resource != nil {
		warn("malformed request target, using root path: %v", fb.resource)
	}
	if err != nil {
		warn("%v", err)
		return result
	}

	if fb.headers != nil {
		warn("malformed header block, headers dropped: %v", fb.headers)
	}
	for _, name := range req.headers.Names() {
		if !httpguts.ValidHeaderFieldName(name) {
			warn("header name %q is not a valid token", name)
		}
		if !httpguts.ValidHeaderFieldValue(req.headers[name]) {
			warn("header %q has an invalid value", name)
		}
	}
	if !strings.Contains(raw, bodySeparator) {
		warn("no blank line after headers, body is empty")
	}

	return result
}
