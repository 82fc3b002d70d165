package server

import (
	"github.com/shapestone/simple-http/pkg/http"
)

const helloWorldBody = `<html>
    <body>
    <h1>Hello World</h1>
    </body>
    </html>`

// HelloWorld returns the response written to every connection.
func HelloWorld() *http.Response {
	return &http.Response{
		Version:    "HTTP/1.1",
		StatusCode: 200,
		Reason:     "OK",
		Headers: http.ResponseHeaders{
			{Key: "Content-Type", Value: "text/html"},
			{Key: "Vary", Value: "Accept-Encoding"},
		},
		Body: []byte(helloWorldBody),
	}
}
