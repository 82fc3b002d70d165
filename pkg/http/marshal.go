package http

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/shapestone/simple-http/internal/parser"
)

const defaultResponseVersion = "HTTP/1.1"

// bufPool pools []byte slices for MarshalHTTP.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// MarshalHTTP returns the HTTP/1.1 wire-format encoding of r:
//
//	VERSION SP CODE [SP REASON] CRLF
//	*(KEY ": " VALUE CRLF)
//	CRLF
//	BODY
//
// If a body is present and the Content-Length header is absent, Content-Length
// is set automatically. An empty Version is written as "HTTP/1.1".
func (r *Response) MarshalHTTP() ([]byte, error) {
	if r.StatusCode < 100 || r.StatusCode > 999 {
		return nil, fmt.Errorf("http: invalid status code %d", r.StatusCode)
	}

	bp := bufPool.Get().(*[]byte)
	buf := r.appendTo((*bp)[:0])

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}

func (r *Response) appendTo(buf []byte) []byte {
	version := r.Version
	if version == "" {
		version = defaultResponseVersion
	}
	buf = append(buf, version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(r.StatusCode), 10)
	if r.Reason != "" {
		buf = append(buf, ' ')
		buf = append(buf, r.Reason...)
	}
	buf = append(buf, parser.CRLF...)

	for _, h := range r.Headers {
		buf = appendHeader(buf, h.Key, h.Value)
	}
	if len(r.Body) > 0 && r.Headers.Get("Content-Length") == "" {
		buf = appendHeader(buf, "Content-Length", strconv.Itoa(len(r.Body)))
	}

	buf = append(buf, parser.CRLF...)
	return append(buf, r.Body...)
}

func appendHeader(buf []byte, key, value string) []byte {
	buf = append(buf, key...)
	buf = append(buf, ':', ' ')
	buf = append(buf, value...)
	return append(buf, parser.CRLF...)
}
