package web

import (
	"net/http"
	"regexp"
	"strings"
)

var lineBreakPattern = regexp.MustCompile(`\r?\n`)

// HTTPHeaders is an ordered collection of HTTP header values with case-insensitive names.
//
// The first Add for a name fixes its canonical spelling; later Adds with any other letter case append
// to the same entry. Unlike http.Header, names are not rewritten to MIME canonical form.
//
// An HTTPHeaders is not safe for concurrent mutation. The zero value is an empty collection.
type HTTPHeaders struct {
	values map[string][]string // canonical name -> values
	names  map[string]string   // lowercased name -> canonical name
	order  []string            // canonical names in insertion order
}

// NewHTTPHeaders returns an empty collection.
func NewHTTPHeaders() *HTTPHeaders {
	return &HTTPHeaders{}
}

// ParseHTTPHeaders builds a collection from raw header text: "Name: Value" lines separated by "\n"
// or "\r\n". Name and value are trimmed, only the first colon separates them, and lines without a
// colon are skipped.
func ParseHTTPHeaders(rawText string) *HTTPHeaders {
	h := NewHTTPHeaders()
	if rawText == "" {
		return h
	}
	for _, line := range lineBreakPattern.Split(rawText, -1) {
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		h.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return h
}

// Add appends a value for a header name and returns the same collection. An empty name is ignored.
// The value is stored as given.
func (h *HTTPHeaders) Add(name, value string) *HTTPHeaders {
	if name == "" {
		return h
	}
	if h.values == nil {
		h.values = make(map[string][]string)
		h.names = make(map[string]string)
	}
	key := strings.ToLower(name)
	canonical, ok := h.names[key]
	if !ok {
		canonical = name
		h.names[key] = canonical
		h.order = append(h.order, canonical)
	}
	h.values[canonical] = append(h.values[canonical], value)
	return h
}

// Get returns the values of a header in the order they were added, looking the name up without
// regard to case. The returned slice is a copy. The second result is false if the header was never
// added.
func (h *HTTPHeaders) Get(name string) ([]string, bool) {
	if h == nil || name == "" || h.names == nil {
		return nil, false
	}
	canonical, ok := h.names[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), h.values[canonical]...), true
}

// GetFirst returns the first value of a header. The second result is false if the header was never
// added.
func (h *HTTPHeaders) GetFirst(name string) (string, bool) {
	values, ok := h.Get(name)
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Map returns a copy of the collection keyed by canonical header names. Use Names for the insertion
// order of the keys.
func (h *HTTPHeaders) Map() map[string][]string {
	ret := make(map[string][]string, h.Len())
	if h == nil {
		return ret
	}
	for _, name := range h.order {
		ret[name] = append([]string(nil), h.values[name]...)
	}
	return ret
}

// Names returns the canonical header names in the order they were first added.
func (h *HTTPHeaders) Names() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.order...)
}

// Len returns the number of distinct header names.
func (h *HTTPHeaders) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

// ToHTTPHeader converts the collection to an http.Header for use with net/http. Names are converted
// to MIME canonical form there, and values keep their order.
func (h *HTTPHeaders) ToHTTPHeader() http.Header {
	ret := make(http.Header, h.Len())
	if h == nil {
		return ret
	}
	for _, name := range h.order {
		for _, v := range h.values[name] {
			ret.Add(name, v)
		}
	}
	return ret
}
