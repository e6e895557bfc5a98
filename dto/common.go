// Package dto contains the request and response bodies of the Authlete API endpoints covered by
// the api package. Field names follow the JSON names used by Authlete.
package dto

// APIResponse holds the result code and message carried by every Authlete response, including
// error responses.
type APIResponse struct {
	ResultCode    string `json:"resultCode,omitempty"`
	ResultMessage string `json:"resultMessage,omitempty"`
}

// GetResultCode returns the result code, e.g. "A004001".
func (r APIResponse) GetResultCode() string { return r.ResultCode }

// GetResultMessage returns the human-readable result message.
func (r APIResponse) GetResultMessage() string { return r.ResultMessage }

// Result is implemented by every response type.
type Result interface {
	GetResultCode() string
	GetResultMessage() string
}

// Property is an arbitrary key/value pair associated with an access token or authorization code.
// Hidden properties are not returned by the standard introspection endpoint.
type Property struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Pair is a generic name/value pair.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Scope describes an OAuth scope supported by a service.
type Scope struct {
	Name         string `json:"name"`
	DefaultEntry bool   `json:"defaultEntry,omitempty"`
	Description  string `json:"description,omitempty"`
	Attributes   []Pair `json:"attributes,omitempty"`
}

// ListRange describes the slice of a list returned by a list endpoint.
type ListRange struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	TotalCount int `json:"totalCount"`
}
