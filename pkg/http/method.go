package http

// Method is the classified request method.
//
// The zero value is MethodUnrecognized: a classified token that is neither
// GET nor POST. There is no separate "not parsed yet" state.
type Method uint8

const (
	MethodUnrecognized Method = iota
	MethodGet
	MethodPost
)

// String returns the method token, or "UNRECOGNIZED".
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNRECOGNIZED"
	}
}

// IsRecognized reports whether m is GET or POST.
func (m Method) IsRecognized() bool {
	return m == MethodGet || m == MethodPost
}

// ParseMethod classifies token. Only the exact, case-sensitive strings "GET"
// and "POST" are recognized; every other token, including "", "get" and
// "PUT", is MethodUnrecognized.
func ParseMethod(token string) Method {
	switch token {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	default:
		return MethodUnrecognized
	}
}
