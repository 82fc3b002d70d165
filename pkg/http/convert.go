package http

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// RequestToNode converts a Request to an AST ObjectNode.
//
//	{ "type": "request", "method": "POST", "path": "submit",
//	  "version": "HTTP/1.1",
//	  "headers": { "Content-Type": "text/plain", ... },
//	  "body": "abc" }
func RequestToNode(req *Request) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.method.String(), zeroPos),
		"path":    ast.NewLiteralNode(req.resource.Path, zeroPos),
		"version": ast.NewLiteralNode(req.version.String(), zeroPos),
		"headers": headersToNode(req.headers),
		"body":    ast.NewLiteralNode(req.body, zeroPos),
	}, zeroPos)
}

// NodeToInterface converts an AST node into plain Go values suitable for
// encoding/json-style marshaling: objects become map[string]interface{},
// arrays []interface{}, literals their value. Unknown nodes and nil become nil.
func NodeToInterface(node ast.SchemaNode) interface{} {
	if obj, ok := node.(*ast.ObjectNode); ok {
		out := make(map[string]interface{}, len(obj.Properties()))
		for name, child := range obj.Properties() {
			out[name] = NodeToInterface(child)
		}
		return out
	}
	if arr, ok := node.(*ast.ArrayDataNode); ok {
		out := make([]interface{}, 0, len(arr.Elements()))
		for _, child := range arr.Elements() {
			out = append(out, NodeToInterface(child))
		}
		return out
	}
	if lit, ok := node.(*ast.LiteralNode); ok {
		return lit.Value()
	}
	return nil
}

func headersToNode(headers Headers) ast.SchemaNode {
	props := make(map[string]ast.SchemaNode, len(headers))
	for name, value := range headers {
		props[name] = ast.NewLiteralNode(value, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}
