package dto

// ClientType is the OAuth client type.
type ClientType string

// Values of Client.ClientType.
const (
	ClientTypePublic       ClientType = "PUBLIC"
	ClientTypeConfidential ClientType = "CONFIDENTIAL"
)

// Client is an OAuth client application registered with a service.
type Client struct {
	Number                  int64      `json:"number,omitempty"`
	ServiceNumber           int64      `json:"serviceNumber,omitempty"`
	Developer               string     `json:"developer,omitempty"`
	ClientID                int64      `json:"clientId,omitempty"`
	ClientIDAlias           string     `json:"clientIdAlias,omitempty"`
	ClientIDAliasEnabled    bool       `json:"clientIdAliasEnabled,omitempty"`
	ClientSecret            string     `json:"clientSecret,omitempty"`
	ClientName              string     `json:"clientName,omitempty"`
	ClientType              ClientType `json:"clientType,omitempty"`
	ApplicationType         string     `json:"applicationType,omitempty"`
	RedirectURIs            []string   `json:"redirectUris,omitempty"`
	GrantTypes              []string   `json:"grantTypes,omitempty"`
	ResponseTypes           []string   `json:"responseTypes,omitempty"`
	TokenAuthMethod         string     `json:"tokenAuthMethod,omitempty"`
	Description             string     `json:"description,omitempty"`
	Contacts                []string   `json:"contacts,omitempty"`
	JWKSURI                 string     `json:"jwksUri,omitempty"`
	DynamicallyRegistered   bool       `json:"dynamicallyRegistered,omitempty"`
	TLSClientCertBoundToken bool       `json:"tlsClientCertificateBoundAccessTokens,omitempty"`
	CreatedAt               int64      `json:"createdAt,omitempty"`
	ModifiedAt              int64      `json:"modifiedAt,omitempty"`
}

// ClientListResponse is the result of /client/get/list.
type ClientListResponse struct {
	ListRange
	Developer string   `json:"developer,omitempty"`
	Clients   []Client `json:"clients"`
}
