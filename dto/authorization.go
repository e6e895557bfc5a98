package dto

// AuthorizationAction tells the authorization endpoint implementation what to do next.
type AuthorizationAction string

// Values of AuthorizationResponse.Action.
const (
	AuthorizationActionInternalServerError AuthorizationAction = "INTERNAL_SERVER_ERROR"
	AuthorizationActionBadRequest          AuthorizationAction = "BAD_REQUEST"
	AuthorizationActionLocation            AuthorizationAction = "LOCATION"
	AuthorizationActionForm                AuthorizationAction = "FORM"
	AuthorizationActionNoInteraction       AuthorizationAction = "NO_INTERACTION"
	AuthorizationActionInteraction         AuthorizationAction = "INTERACTION"
)

// AuthorizationRequest is the body of /auth/authorization.
type AuthorizationRequest struct {
	// Parameters is the query string or form body received by the authorization endpoint.
	Parameters string `json:"parameters"`
	Context    string `json:"context,omitempty"`
}

// AuthorizationResponse is the result of /auth/authorization.
type AuthorizationResponse struct {
	APIResponse
	Action          AuthorizationAction `json:"action"`
	Client          *Client             `json:"client,omitempty"`
	Display         string              `json:"display,omitempty"`
	MaxAge          int                 `json:"maxAge,omitempty"`
	Scopes          []Scope             `json:"scopes,omitempty"`
	UILocales       []string            `json:"uiLocales,omitempty"`
	Prompts         []string            `json:"prompts,omitempty"`
	LoginHint       string              `json:"loginHint,omitempty"`
	Subject         string              `json:"subject,omitempty"`
	ACRs            []string            `json:"acrs,omitempty"`
	ResponseContent string              `json:"responseContent,omitempty"`
	Ticket          string              `json:"ticket,omitempty"`
}

// AuthorizationFailReason is the reason passed to /auth/authorization/fail.
type AuthorizationFailReason string

// Values of AuthorizationFailRequest.Reason.
const (
	AuthorizationFailReasonUnknown             AuthorizationFailReason = "UNKNOWN"
	AuthorizationFailReasonNotLoggedIn         AuthorizationFailReason = "NOT_LOGGED_IN"
	AuthorizationFailReasonMaxAgeNotSupported  AuthorizationFailReason = "MAX_AGE_NOT_SUPPORTED"
	AuthorizationFailReasonExceedsMaxAge       AuthorizationFailReason = "EXCEEDS_MAX_AGE"
	AuthorizationFailReasonDifferentSubject    AuthorizationFailReason = "DIFFERENT_SUBJECT"
	AuthorizationFailReasonACRNotSatisfied     AuthorizationFailReason = "ACR_NOT_SATISFIED"
	AuthorizationFailReasonDenied              AuthorizationFailReason = "DENIED"
	AuthorizationFailReasonServerError         AuthorizationFailReason = "SERVER_ERROR"
	AuthorizationFailReasonNotAuthenticated    AuthorizationFailReason = "NOT_AUTHENTICATED"
	AuthorizationFailReasonAccountSelectionReq AuthorizationFailReason = "ACCOUNT_SELECTION_REQUIRED"
	AuthorizationFailReasonConsentRequired     AuthorizationFailReason = "CONSENT_REQUIRED"
	AuthorizationFailReasonInteractionRequired AuthorizationFailReason = "INTERACTION_REQUIRED"
)

// AuthorizationFailRequest is the body of /auth/authorization/fail.
type AuthorizationFailRequest struct {
	Ticket      string                  `json:"ticket"`
	Reason      AuthorizationFailReason `json:"reason"`
	Description string                  `json:"description,omitempty"`
}

// AuthorizationFailAction tells the caller how to report an authorization failure.
type AuthorizationFailAction string

// Values of AuthorizationFailResponse.Action.
const (
	AuthorizationFailActionInternalServerError AuthorizationFailAction = "INTERNAL_SERVER_ERROR"
	AuthorizationFailActionBadRequest          AuthorizationFailAction = "BAD_REQUEST"
	AuthorizationFailActionLocation            AuthorizationFailAction = "LOCATION"
	AuthorizationFailActionForm                AuthorizationFailAction = "FORM"
)

// AuthorizationFailResponse is the result of /auth/authorization/fail.
type AuthorizationFailResponse struct {
	APIResponse
	Action          AuthorizationFailAction `json:"action"`
	ResponseContent string                  `json:"responseContent,omitempty"`
}

// AuthorizationIssueRequest is the body of /auth/authorization/issue.
type AuthorizationIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	AuthTime   int64      `json:"authTime,omitempty"`
	ACR        string     `json:"acr,omitempty"`
	Claims     string     `json:"claims,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Scopes     []string   `json:"scopes,omitempty"`
	Sub        string     `json:"sub,omitempty"`
}

// AuthorizationIssueAction tells the caller how to deliver the authorization result.
type AuthorizationIssueAction string

// Values of AuthorizationIssueResponse.Action.
const (
	AuthorizationIssueActionInternalServerError AuthorizationIssueAction = "INTERNAL_SERVER_ERROR"
	AuthorizationIssueActionBadRequest          AuthorizationIssueAction = "BAD_REQUEST"
	AuthorizationIssueActionLocation            AuthorizationIssueAction = "LOCATION"
	AuthorizationIssueActionForm                AuthorizationIssueAction = "FORM"
)

// AuthorizationIssueResponse is the result of /auth/authorization/issue.
type AuthorizationIssueResponse struct {
	APIResponse
	Action               AuthorizationIssueAction `json:"action"`
	ResponseContent      string                   `json:"responseContent,omitempty"`
	AccessToken          string                   `json:"accessToken,omitempty"`
	AccessTokenExpiresAt int64                    `json:"accessTokenExpiresAt,omitempty"`
	AccessTokenDuration  int64                    `json:"accessTokenDuration,omitempty"`
	IDToken              string                   `json:"idToken,omitempty"`
	AuthorizationCode    string                   `json:"authorizationCode,omitempty"`
}
