package web

import "strings"

// HTTPMethod is an HTTP request method.
type HTTPMethod string

// The methods known to ParseHTTPMethod.
const (
	MethodGet     HTTPMethod = "GET"
	MethodHead    HTTPMethod = "HEAD"
	MethodPost    HTTPMethod = "POST"
	MethodPut     HTTPMethod = "PUT"
	MethodDelete  HTTPMethod = "DELETE"
	MethodConnect HTTPMethod = "CONNECT"
	MethodOptions HTTPMethod = "OPTIONS"
	MethodTrace   HTTPMethod = "TRACE"
	MethodPatch   HTTPMethod = "PATCH"
)

var allMethods = []HTTPMethod{
	MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete,
	MethodConnect, MethodOptions, MethodTrace, MethodPatch,
}

// ParseHTTPMethod returns the method with the given name, ignoring case.
func ParseHTTPMethod(name string) (HTTPMethod, bool) {
	for _, m := range allMethods {
		if strings.EqualFold(string(m), name) {
			return m, true
		}
	}
	return "", false
}

func (m HTTPMethod) String() string {
	return string(m)
}

// HasRequestBody is true for the methods whose requests the Authlete client sends with a JSON body.
func (m HTTPMethod) HasRequestBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}
