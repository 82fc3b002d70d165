package parser

import (
	"reflect"
	"testing"
)

func TestSplit_Request(t *testing.T) {
	rl := Split("GET /api/users HTTP/1.1\r\nHost: example.com\r\n\r\n")

	if rl.Line != "GET /api/users HTTP/1.1" {
		t.Errorf("Line = %q, want request line", rl.Line)
	}
	if !rl.Present() {
		t.Error("Present() = false, want true")
	}
	if !rl.HasMethod || rl.Method != "GET" {
		t.Errorf("Method = %q (has=%v), want GET", rl.Method, rl.HasMethod)
	}
	if !rl.HasTarget || rl.Target != "/api/users" {
		t.Errorf("Target = %q (has=%v), want /api/users", rl.Target, rl.HasTarget)
	}
	if rl.Protocol != "HTTP/1.1" {
		t.Errorf("Protocol = %q, want HTTP/1.1", rl.Protocol)
	}
	want := []string{"GET", "/api/users", "HTTP/1.1"}
	if !reflect.DeepEqual(rl.Fields, want) {
		t.Errorf("Fields = %q, want %q", rl.Fields, want)
	}
}

func TestSplit_NoTerminator(t *testing.T) {
	rl := Split("POST /x HTTP/2.0")

	if rl.Line != "POST /x HTTP/2.0" {
		t.Errorf("Line = %q, want whole input", rl.Line)
	}
	if rl.Target != "/x" || rl.Protocol != "HTTP/2.0" {
		t.Errorf("Target/Protocol = %q/%q, want /x HTTP/2.0", rl.Target, rl.Protocol)
	}
}

func TestSplit_Missing(t *testing.T) {
	tests := []string{"", "\r\n", "\r\nHost: x\r\n\r\n"}

	for _, raw := range tests {
		rl := Split(raw)
		if rl.Present() {
			t.Errorf("Split(%q).Present() = true, want false", raw)
		}
		if rl.HasMethod || rl.HasTarget || len(rl.Fields) != 0 {
			t.Errorf("Split(%q) = %+v, want zero tokens", raw, rl)
		}
	}
}

func TestSplit_SpaceSemantics(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		method    string
		hasMethod bool
		target    string
		protocol  string
		hasTarget bool
		fields    []string
	}{
		{
			name: "no spaces", raw: "GET\r\n",
			fields: []string{"GET"},
		},
		{
			name: "single token remainder", raw: "GET /x\r\n",
			method: "GET", hasMethod: true,
			fields: []string{"GET", "/x"},
		},
		{
			name: "extra tokens stay in protocol", raw: "GET /x HTTP/1.1 junk\r\n",
			method: "GET", hasMethod: true, target: "/x", protocol: "HTTP/1.1 junk", hasTarget: true,
			fields: []string{"GET", "/x", "HTTP/1.1", "junk"},
		},
		{
			name: "double space yields empty target", raw: "GET  /x HTTP/1.1\r\n",
			method: "GET", hasMethod: true, target: "", protocol: "/x HTTP/1.1", hasTarget: true,
			fields: []string{"GET", "/x", "HTTP/1.1"},
		},
		{
			name: "tab is not a separator", raw: "GET\t/x HTTP/1.1\r\n",
			method: "GET\t/x", hasMethod: true,
			fields: []string{"GET", "/x", "HTTP/1.1"},
		},
		{
			name: "leading space", raw: " GET / HTTP/1.1\r\n",
			method: "", hasMethod: true, target: "GET", protocol: "/ HTTP/1.1", hasTarget: true,
			fields: []string{"GET", "/", "HTTP/1.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := Split(tt.raw)
			if rl.HasMethod != tt.hasMethod || rl.Method != tt.method {
				t.Errorf("Method = %q (has=%v), want %q (has=%v)", rl.Method, rl.HasMethod, tt.method, tt.hasMethod)
			}
			if rl.HasTarget != tt.hasTarget || rl.Target != tt.target || rl.Protocol != tt.protocol {
				t.Errorf("Target/Protocol = %q/%q (has=%v), want %q/%q (has=%v)",
					rl.Target, rl.Protocol, rl.HasTarget, tt.target, tt.protocol, tt.hasTarget)
			}
			if !reflect.DeepEqual(rl.Fields, tt.fields) {
				t.Errorf("Fields = %q, want %q", rl.Fields, tt.fields)
			}
		})
	}
}

func TestFirstField(t *testing.T) {
	if got := Split("\tPOST /a HTTP/1.1\r\n").FirstField(); got != "POST" {
		t.Errorf("FirstField() = %q, want POST", got)
	}
	if got := Split("").FirstField(); got != "" {
		t.Errorf("FirstField() on empty = %q, want \"\"", got)
	}
}

func TestLine(t *testing.T) {
	if got := Line("A\r\nB\r\n"); got != "A" {
		t.Errorf("Line() = %q, want A", got)
	}
	// A bare LF is not a terminator.
	if got := Line("A\nB"); got != "A\nB" {
		t.Errorf("Line() = %q, want whole input", got)
	}
}

func TestSplit_KeepsRequestBytes(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target string
		fields []string
	}{
		{
			name: "invalid utf-8", raw: "GET /a\xffb HTTP/1.1\r\n",
			target: "/a\xffb",
			fields: []string{"GET", "/a\xffb", "HTTP/1.1"},
		},
		{
			name: "literal replacement char", raw: "GET /a�b HTTP/1.1\r\n",
			target: "/a�b",
			fields: []string{"GET", "/a�b", "HTTP/1.1"},
		},
		{
			name: "multibyte", raw: "GET /café/\xc3 HTTP/1.1\r\n",
			target: "/café/\xc3",
			fields: []string{"GET", "/café/\xc3", "HTTP/1.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := Split(tt.raw)
			if rl.Target != tt.target {
				t.Errorf("Target = %q, want %q", rl.Target, tt.target)
			}
			if rl.Protocol != "HTTP/1.1" {
				t.Errorf("Protocol = %q, want HTTP/1.1", rl.Protocol)
			}
			if !reflect.DeepEqual(rl.Fields, tt.fields) {
				t.Errorf("Fields = %q, want %q", rl.Fields, tt.fields)
			}
		})
	}
}
