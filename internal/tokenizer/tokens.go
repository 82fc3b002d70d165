// Package tokenizer provides request-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for the request line.
// The request line is tokenized on its own, after it has been cut from the
// raw request at the first CRLF, so no line-ending tokens exist.
const (
	TokenText  = "Text"  // method, request-target, protocol, or any other word
	TokenSP    = "SP"    // a single space (0x20), the request-line separator
	TokenSpace = "Space" // a run of any other whitespace (HTAB, VT, FF, bare CR, ...)
)
