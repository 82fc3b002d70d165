package http

import (
	"strings"
	"testing"
)

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestInspect_ValidRequest(t *testing.T) {
	result := Inspect("GET /api HTTP/1.1\r\nHost: example.com\r\n\r\n")

	if result.Request == nil {
		t.Fatal("expected request")
	}
	if result.Request.Method() != MethodGet {
		t.Errorf("Method = %v, want GET", result.Request.Method())
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestInspect_UnrecognizedMethod(t *testing.T) {
	result := Inspect("PUT /x HTTP/1.1\r\n\r\n")

	if result.Request == nil {
		t.Fatal("expected request")
	}
	if result.Request.Path() != "" {
		t.Errorf("Path = %q, want root fallback", result.Request.Path())
	}
	if !hasWarning(result.Warnings, `unrecognized method "PUT"`) {
		t.Errorf("expected unrecognized method warning, got %v", result.Warnings)
	}
	if !hasWarning(result.Warnings, "malformed request target") {
		t.Errorf("expected target warning, got %v", result.Warnings)
	}
}

func TestInspect_MalformedHeaders(t *testing.T) {
	result := Inspect("GET / HTTP/1.1\r\nHost: a\r\nbroken\r\n\r\n")

	if result.Request == nil {
		t.Fatal("expected request")
	}
	if result.Request.Headers().Len() != 0 {
		t.Errorf("Headers = %v, want empty fallback", result.Request.Headers())
	}
	if !hasWarning(result.Warnings, "headers dropped") {
		t.Errorf("expected header warning, got %v", result.Warnings)
	}
}

func TestInspect_InvalidHeaderTokens(t *testing.T) {
	result := Inspect("GET / HTTP/1.1\r\nBad Name: x\r\nX-Ctl: a\x01b\r\n\r\n")

	if result.Request == nil {
		t.Fatal("expected request")
	}
	// the strict parser keeps both headers
	if result.Request.Header("Bad Name") != "x" {
		t.Errorf("Header(Bad Name) = %q, want x", result.Request.Header("Bad Name"))
	}
	if !hasWarning(result.Warnings, `header name "Bad Name" is not a valid token`) {
		t.Errorf("expected header name warning, got %v", result.Warnings)
	}
	if !hasWarning(result.Warnings, `header "X-Ctl" has an invalid value`) {
		t.Errorf("expected header value warning, got %v", result.Warnings)
	}
}

func TestInspect_MissingSeparator(t *testing.T) {
	result := Inspect("GET / HTTP/1.1\r\nHost: a")

	if result.Request == nil {
		t.Fatal("expected request")
	}
	if result.Request.Body() != "" {
		t.Errorf("Body = %q, want empty", result.Request.Body())
	}
	if !hasWarning(result.Warnings, "no blank line") {
		t.Errorf("expected separator warning, got %v", result.Warnings)
	}
}

func TestInspect_VersionFailure(t *testing.T) {
	raw := "GET / FTP/1.0\r\n\r\n"
	result := Inspect(raw)

	if result.Request != nil {
		t.Errorf("Request = %+v, want nil", result.Request)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning")
	}
	last := result.Warnings[len(result.Warnings)-1]
	if !strings.Contains(last, "no recognized protocol version") {
		t.Errorf("last warning = %q, want the version error", last)
	}
}

func TestInspect_MatchesParseRequest(t *testing.T) {
	inputs := []string{
		"POST /submit HTTP/1.1\r\nContent-Type: text/plain\r\n\r\nabc",
		"FOO /x HTTP/1.1\r\n\r\n",
		"GET /a HTTP/2.0\r\nno colon\r\n\r\nbody",
		"GET / FTP/1.0\r\n\r\n",
		"",
	}

	for _, raw := range inputs {
		want, wantErr := ParseRequest(raw)
		got := Inspect(raw).Request

		if (wantErr != nil) != (got == nil) {
			t.Errorf("Inspect(%q).Request = %v, ParseRequest error = %v", raw, got, wantErr)
			continue
		}
		if got == nil {
			continue
		}
		if got.Method() != want.Method() || got.Path() != want.Path() ||
			got.Version() != want.Version() || got.Body() != want.Body() ||
			got.Headers().Len() != want.Headers().Len() {
			t.Errorf("Inspect(%q).Request = %+v, want %+v", raw, got, want)
		}
	}
}
