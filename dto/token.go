package dto

// TokenRequest is the body of /auth/token.
type TokenRequest struct {
	// Parameters is the form body received by the token endpoint.
	Parameters        string     `json:"parameters"`
	ClientID          string     `json:"clientId,omitempty"`
	ClientSecret      string     `json:"clientSecret,omitempty"`
	ClientCertificate string     `json:"clientCertificate,omitempty"`
	Properties        []Property `json:"properties,omitempty"`
	DPoP              string     `json:"dpop,omitempty"`
	HTM               string     `json:"htm,omitempty"`
	HTU               string     `json:"htu,omitempty"`
}

// TokenAction tells the token endpoint implementation what to do next.
type TokenAction string

// Values of TokenResponse.Action.
const (
	TokenActionInvalidClient       TokenAction = "INVALID_CLIENT"
	TokenActionInternalServerError TokenAction = "INTERNAL_SERVER_ERROR"
	TokenActionBadRequest          TokenAction = "BAD_REQUEST"
	TokenActionPassword            TokenAction = "PASSWORD"
	TokenActionOK                  TokenAction = "OK"
	TokenActionTokenExchange       TokenAction = "TOKEN_EXCHANGE"
	TokenActionJWTBearer           TokenAction = "JWT_BEARER"
)

// TokenResponse is the result of /auth/token.
type TokenResponse struct {
	APIResponse
	Action                TokenAction `json:"action"`
	ResponseContent       string      `json:"responseContent,omitempty"`
	Username              string      `json:"username,omitempty"`
	Password              string      `json:"password,omitempty"`
	Ticket                string      `json:"ticket,omitempty"`
	AccessToken           string      `json:"accessToken,omitempty"`
	AccessTokenExpiresAt  int64       `json:"accessTokenExpiresAt,omitempty"`
	AccessTokenDuration   int64       `json:"accessTokenDuration,omitempty"`
	RefreshToken          string      `json:"refreshToken,omitempty"`
	RefreshTokenExpiresAt int64       `json:"refreshTokenExpiresAt,omitempty"`
	RefreshTokenDuration  int64       `json:"refreshTokenDuration,omitempty"`
	IDToken               string      `json:"idToken,omitempty"`
	GrantType             string      `json:"grantType,omitempty"`
	ClientID              int64       `json:"clientId,omitempty"`
	Subject               string      `json:"subject,omitempty"`
	Scopes                []string    `json:"scopes,omitempty"`
	Properties            []Property  `json:"properties,omitempty"`
}

// TokenFailReason is the reason passed to /auth/token/fail.
type TokenFailReason string

// Values of TokenFailRequest.Reason.
const (
	TokenFailReasonUnknown                  TokenFailReason = "UNKNOWN"
	TokenFailReasonInvalidResourceOwnerCred TokenFailReason = "INVALID_RESOURCE_OWNER_CREDENTIALS"
	TokenFailReasonInvalidTarget            TokenFailReason = "INVALID_TARGET"
)

// TokenFailRequest is the body of /auth/token/fail.
type TokenFailRequest struct {
	Ticket string          `json:"ticket"`
	Reason TokenFailReason `json:"reason"`
}

// TokenFailAction tells the caller how to report a token request failure.
type TokenFailAction string

// Values of TokenFailResponse.Action.
const (
	TokenFailActionInternalServerError TokenFailAction = "INTERNAL_SERVER_ERROR"
	TokenFailActionBadRequest          TokenFailAction = "BAD_REQUEST"
)

// TokenFailResponse is the result of /auth/token/fail.
type TokenFailResponse struct {
	APIResponse
	Action          TokenFailAction `json:"action"`
	ResponseContent string          `json:"responseContent,omitempty"`
}

// TokenIssueRequest is the body of /auth/token/issue, used after the caller has authenticated a
// resource owner for the password grant.
type TokenIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	Properties []Property `json:"properties,omitempty"`
}

// TokenIssueAction tells the caller how to answer the token request.
type TokenIssueAction string

// Values of TokenIssueResponse.Action.
const (
	TokenIssueActionInternalServerError TokenIssueAction = "INTERNAL_SERVER_ERROR"
	TokenIssueActionOK                  TokenIssueAction = "OK"
)

// TokenIssueResponse is the result of /auth/token/issue.
type TokenIssueResponse struct {
	APIResponse
	Action               TokenIssueAction `json:"action"`
	ResponseContent      string           `json:"responseContent,omitempty"`
	AccessToken          string           `json:"accessToken,omitempty"`
	AccessTokenExpiresAt int64            `json:"accessTokenExpiresAt,omitempty"`
	RefreshToken         string           `json:"refreshToken,omitempty"`
	ClientID             int64            `json:"clientId,omitempty"`
	Subject              string           `json:"subject,omitempty"`
	Scopes               []string         `json:"scopes,omitempty"`
}
