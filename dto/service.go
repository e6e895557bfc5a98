package dto

// Service is an authorization server instance registered with Authlete.
type Service struct {
	Number                 int64    `json:"number,omitempty"`
	ServiceName            string   `json:"serviceName,omitempty"`
	APIKey                 int64    `json:"apiKey,omitempty"`
	APISecret              string   `json:"apiSecret,omitempty"`
	Issuer                 string   `json:"issuer,omitempty"`
	AuthorizationEndpoint  string   `json:"authorizationEndpoint,omitempty"`
	TokenEndpoint          string   `json:"tokenEndpoint,omitempty"`
	RevocationEndpoint     string   `json:"revocationEndpoint,omitempty"`
	UserInfoEndpoint       string   `json:"userInfoEndpoint,omitempty"`
	IntrospectionEndpoint  string   `json:"introspectionEndpoint,omitempty"`
	JWKSURI                string   `json:"jwksUri,omitempty"`
	SupportedScopes        []Scope  `json:"supportedScopes,omitempty"`
	SupportedGrantTypes    []string `json:"supportedGrantTypes,omitempty"`
	SupportedResponseTypes []string `json:"supportedResponseTypes,omitempty"`
	SupportedClaims        []string `json:"supportedClaims,omitempty"`
	AccessTokenDuration    int64    `json:"accessTokenDuration,omitempty"`
	RefreshTokenDuration   int64    `json:"refreshTokenDuration,omitempty"`
	IDTokenDuration        int64    `json:"idTokenDuration,omitempty"`
	PKCERequired           bool     `json:"pkceRequired,omitempty"`
	CreatedAt              int64    `json:"createdAt,omitempty"`
	ModifiedAt             int64    `json:"modifiedAt,omitempty"`
}

// ServiceListResponse is the result of /service/get/list.
type ServiceListResponse struct {
	ListRange
	Services []Service `json:"services"`
}
