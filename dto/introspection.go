package dto

// IntrospectionRequest is the body of /auth/introspection, used by resource servers to validate an
// access token they received.
type IntrospectionRequest struct {
	Token             string   `json:"token"`
	Scopes            []string `json:"scopes,omitempty"`
	Subject           string   `json:"subject,omitempty"`
	ClientCertificate string   `json:"clientCertificate,omitempty"`
	DPoP              string   `json:"dpop,omitempty"`
	HTM               string   `json:"htm,omitempty"`
	HTU               string   `json:"htu,omitempty"`
}

// IntrospectionAction tells a resource server what to do with the request that carried the token.
type IntrospectionAction string

// Values of IntrospectionResponse.Action.
const (
	IntrospectionActionInternalServerError IntrospectionAction = "INTERNAL_SERVER_ERROR"
	IntrospectionActionBadRequest          IntrospectionAction = "BAD_REQUEST"
	IntrospectionActionUnauthorized        IntrospectionAction = "UNAUTHORIZED"
	IntrospectionActionForbidden           IntrospectionAction = "FORBIDDEN"
	IntrospectionActionOK                  IntrospectionAction = "OK"
)

// IntrospectionResponse is the result of /auth/introspection.
type IntrospectionResponse struct {
	APIResponse
	Action                IntrospectionAction `json:"action"`
	ResponseContent       string              `json:"responseContent,omitempty"`
	ClientID              int64               `json:"clientId,omitempty"`
	Subject               string              `json:"subject,omitempty"`
	Scopes                []string            `json:"scopes,omitempty"`
	ExpiresAt             int64               `json:"expiresAt,omitempty"`
	Existent              bool                `json:"existent"`
	Usable                bool                `json:"usable"`
	Sufficient            bool                `json:"sufficient"`
	Refreshable           bool                `json:"refreshable"`
	Properties            []Property          `json:"properties,omitempty"`
	CertificateThumbprint string              `json:"certificateThumbprint,omitempty"`
}

// StandardIntrospectionRequest is the body of /auth/introspection/standard, which implements
// RFC 7662 for the caller's introspection endpoint.
type StandardIntrospectionRequest struct {
	// Parameters is the form body received by the introspection endpoint.
	Parameters           string `json:"parameters"`
	WithHiddenProperties bool   `json:"withHiddenProperties,omitempty"`
}

// StandardIntrospectionAction tells the introspection endpoint implementation how to respond.
type StandardIntrospectionAction string

// Values of StandardIntrospectionResponse.Action.
const (
	StandardIntrospectionActionInternalServerError StandardIntrospectionAction = "INTERNAL_SERVER_ERROR"
	StandardIntrospectionActionBadRequest          StandardIntrospectionAction = "BAD_REQUEST"
	StandardIntrospectionActionOK                  StandardIntrospectionAction = "OK"
)

// StandardIntrospectionResponse is the result of /auth/introspection/standard.
type StandardIntrospectionResponse struct {
	APIResponse
	Action          StandardIntrospectionAction `json:"action"`
	ResponseContent string                      `json:"responseContent,omitempty"`
}
