package dto

// RevocationRequest is the body of /auth/revocation, which implements RFC 7009.
type RevocationRequest struct {
	// Parameters is the form body received by the revocation endpoint.
	Parameters   string `json:"parameters"`
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

// RevocationAction tells the revocation endpoint implementation how to respond.
type RevocationAction string

// Values of RevocationResponse.Action.
const (
	RevocationActionInvalidClient       RevocationAction = "INVALID_CLIENT"
	RevocationActionInternalServerError RevocationAction = "INTERNAL_SERVER_ERROR"
	RevocationActionBadRequest          RevocationAction = "BAD_REQUEST"
	RevocationActionOK                  RevocationAction = "OK"
)

// RevocationResponse is the result of /auth/revocation.
type RevocationResponse struct {
	APIResponse
	Action          RevocationAction `json:"action"`
	ResponseContent string           `json:"responseContent,omitempty"`
}
