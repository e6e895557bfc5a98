package dto

// UserInfoRequest is the body of /auth/userinfo.
type UserInfoRequest struct {
	Token             string `json:"token"`
	ClientCertificate string `json:"clientCertificate,omitempty"`
	DPoP              string `json:"dpop,omitempty"`
	HTM               string `json:"htm,omitempty"`
	HTU               string `json:"htu,omitempty"`
}

// UserInfoAction tells the userinfo endpoint implementation what to do next.
type UserInfoAction string

// Values of UserInfoResponse.Action.
const (
	UserInfoActionInternalServerError UserInfoAction = "INTERNAL_SERVER_ERROR"
	UserInfoActionBadRequest          UserInfoAction = "BAD_REQUEST"
	UserInfoActionUnauthorized        UserInfoAction = "UNAUTHORIZED"
	UserInfoActionForbidden           UserInfoAction = "FORBIDDEN"
	UserInfoActionOK                  UserInfoAction = "OK"
)

// UserInfoResponse is the result of /auth/userinfo.
type UserInfoResponse struct {
	APIResponse
	Action          UserInfoAction `json:"action"`
	ResponseContent string         `json:"responseContent,omitempty"`
	ClientID        int64          `json:"clientId,omitempty"`
	Subject         string         `json:"subject,omitempty"`
	Scopes          []string       `json:"scopes,omitempty"`
	Claims          []string       `json:"claims,omitempty"`
	Token           string         `json:"token,omitempty"`
	Properties      []Property     `json:"properties,omitempty"`
}

// UserInfoIssueRequest is the body of /auth/userinfo/issue.
type UserInfoIssueRequest struct {
	Token string `json:"token"`
	// Claims is a JSON object with the claim values of the user.
	Claims string `json:"claims,omitempty"`
	Sub    string `json:"sub,omitempty"`
}

// UserInfoIssueAction tells the userinfo endpoint implementation how to respond.
type UserInfoIssueAction string

// Values of UserInfoIssueResponse.Action.
const (
	UserInfoIssueActionInternalServerError UserInfoIssueAction = "INTERNAL_SERVER_ERROR"
	UserInfoIssueActionBadRequest          UserInfoIssueAction = "BAD_REQUEST"
	UserInfoIssueActionUnauthorized        UserInfoIssueAction = "UNAUTHORIZED"
	UserInfoIssueActionForbidden           UserInfoIssueAction = "FORBIDDEN"
	UserInfoIssueActionJSON                UserInfoIssueAction = "JSON"
	UserInfoIssueActionJWT                 UserInfoIssueAction = "JWT"
)

// UserInfoIssueResponse is the result of /auth/userinfo/issue.
type UserInfoIssueResponse struct {
	APIResponse
	Action          UserInfoIssueAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
}
