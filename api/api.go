// Package api is a client for the Authlete REST API.
//
// A Client is created from a config.Configuration, which supplies the base URL and the credentials:
//
//	conf, err := config.NewFileConfig("", loggers)
//	if err != nil { ... }
//	client, err := api.New(conf, api.WithLoggers(loggers))
//	if err != nil { ... }
//	res, err := client.Introspection(ctx, &dto.IntrospectionRequest{Token: accessToken})
//
// With API version V2 requests are authenticated with HTTP Basic authentication, using the service API
// key and secret for service-level operations and the service owner key and secret for owner-level
// operations. With V3 every request carries the service access token as a Bearer token.
package api

import (
	"context"

	"github.com/authlete/authlete-go/dto"

	jose "gopkg.in/square/go-jose.v2"
)

// AuthleteAPI is the set of Authlete operations supported by Client.
type AuthleteAPI interface {
	Authorization(ctx context.Context, req *dto.AuthorizationRequest) (*dto.AuthorizationResponse, error)
	AuthorizationFail(ctx context.Context, req *dto.AuthorizationFailRequest) (*dto.AuthorizationFailResponse, error)
	AuthorizationIssue(ctx context.Context, req *dto.AuthorizationIssueRequest) (*dto.AuthorizationIssueResponse, error)

	Token(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	TokenFail(ctx context.Context, req *dto.TokenFailRequest) (*dto.TokenFailResponse, error)
	TokenIssue(ctx context.Context, req *dto.TokenIssueRequest) (*dto.TokenIssueResponse, error)

	Introspection(ctx context.Context, req *dto.IntrospectionRequest) (*dto.IntrospectionResponse, error)
	StandardIntrospection(ctx context.Context, req *dto.StandardIntrospectionRequest) (*dto.StandardIntrospectionResponse, error)
	Revocation(ctx context.Context, req *dto.RevocationRequest) (*dto.RevocationResponse, error)

	UserInfo(ctx context.Context, req *dto.UserInfoRequest) (*dto.UserInfoResponse, error)
	UserInfoIssue(ctx context.Context, req *dto.UserInfoIssueRequest) (*dto.UserInfoIssueResponse, error)

	GetServiceConfiguration(ctx context.Context, pretty bool) (string, error)
	GetServiceJWKS(ctx context.Context, pretty, includePrivateKeys bool) (string, error)
	GetServiceJWKSet(ctx context.Context) (*jose.JSONWebKeySet, error)

	GetClient(ctx context.Context, clientID string) (*dto.Client, error)
	GetClientList(ctx context.Context, developer string, start, end int) (*dto.ClientListResponse, error)
	CreateClient(ctx context.Context, client *dto.Client) (*dto.Client, error)
	DeleteClient(ctx context.Context, clientID string) error

	GetService(ctx context.Context, serviceID string) (*dto.Service, error)
	GetServiceList(ctx context.Context, start, end int) (*dto.ServiceListResponse, error)
}

var _ AuthleteAPI = (*Client)(nil)
