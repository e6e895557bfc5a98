package api

import (
	"encoding/json"
	"fmt"

	"github.com/authlete/authlete-go/dto"
	"github.com/authlete/authlete-go/web"
)

// APIError is returned when Authlete answers with a status other than 2xx.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Headers    *web.HTTPHeaders
	// ResultCode and ResultMessage are set when the body is an Authlete result object.
	ResultCode    string
	ResultMessage string
}

func newAPIError(method, path string, status int, headers *web.HTTPHeaders, body []byte) *APIError {
	e := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       string(body),
		Headers:    headers,
	}
	var result dto.APIResponse
	if json.Unmarshal(body, &result) == nil {
		e.ResultCode = result.ResultCode
		e.ResultMessage = result.ResultMessage
	}
	return e
}

func (e *APIError) Error() string {
	if e.ResultMessage != "" {
		return fmt.Sprintf("Authlete API %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.ResultMessage)
	}
	return fmt.Sprintf("Authlete API %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}
