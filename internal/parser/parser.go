// Package parser splits the request line of a raw HTTP request into the
// tokens consumed by the method, resource and version parsers.
//
// The request line is tokenized once and the result is shared:
//
//	"GET /foo HTTP/1.1\r\nHost: x\r\n\r\n"
//
//	RequestLine{
//	  Line:     "GET /foo HTTP/1.1",
//	  Fields:   ["GET", "/foo", "HTTP/1.1"],
//	  Method:   "GET",      // before the first SP
//	  Target:   "/foo",     // between the first and second SP
//	  Protocol: "HTTP/1.1", // after the second SP
//	}
//
// Fields follows whitespace-delimited word semantics (any Unicode space),
// while Method, Target and Protocol follow split-on-single-space semantics.
// The two only differ for request lines that use tabs or repeated spaces.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/simple-http/internal/tokenizer"
)

// CRLF is the only recognized line terminator.
const CRLF = "\r\n"

// RequestLine is the tokenized first line of a request.
type RequestLine struct {
	// Line is the text before the first CRLF, or the whole input without one.
	Line string
	// Fields are the whitespace-delimited words of Line.
	Fields []string

	// Method is the text before the first SP. Valid only if HasMethod.
	Method    string
	HasMethod bool

	// Target and Protocol are the two halves of the text after the first SP,
	// split on the next SP. Valid only if HasTarget.
	Target    string
	Protocol  string
	HasTarget bool
}

// Present reports whether a request line exists at all.
func (l RequestLine) Present() bool {
	return l.Line != ""
}

// FirstField returns the first whitespace-delimited word, or "".
func (l RequestLine) FirstField() string {
	if len(l.Fields) == 0 {
		return ""
	}
	return l.Fields[0]
}

// Line returns the request line of raw: the text before the first CRLF, or
// all of raw when it has no CRLF.
func Line(raw string) string {
	line, _, _ := strings.Cut(raw, CRLF)
	return line
}

// Split extracts and tokenizes the request line of raw.
func Split(raw string) RequestLine {
	rl := RequestLine{Line: Line(raw)}
	if rl.Line == "" {
		return rl
	}

	tok := tokenizer.NewTokenizer()
	tok.Initialize(rl.Line)
	tokens, _ := tok.Tokenize()

	// Tokens carry runes, so invalid UTF-8 comes back as U+FFFD. Every field is
	// sliced out of Line by byte offset instead, keeping the request bytes intact.
	off := 0
	var seps []int
	for _, t := range tokens {
		start := off
		off = advance(rl.Line, off, utf8.RuneCountInString(t.ValueString()))
		switch t.Kind() {
		case tokenizer.TokenText:
			rl.Fields = append(rl.Fields, rl.Line[start:off])
		case tokenizer.TokenSP:
			if len(seps) < 2 {
				seps = append(seps, start)
			}
		}
	}

	if len(seps) >= 1 {
		rl.Method = rl.Line[:seps[0]]
		rl.HasMethod = true
	}
	if len(seps) == 2 {
		rl.Target = rl.Line[seps[0]+1 : seps[1]]
		rl.Protocol = rl.Line[seps[1]+1:]
		rl.HasTarget = true
	}
	return rl
}

// advance returns the byte offset n runes past off in s, counting each invalid
// byte as one rune the way a []rune conversion does.
func advance(s string, off, n int) int {
	for ; n > 0 && off < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
