package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse parses raw request text into an AST.
//
// The request is assembled with ParseRequest, so the same fallbacks apply and
// only a missing protocol version is an error. See RequestToNode for the
// shape of the returned ObjectNode.
func Parse(input string) (ast.SchemaNode, error) {
	req, err := ParseRequest(input)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// ParseReader reads all data from r and parses it as a request into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
