package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/authlete/authlete-go/config"
	"github.com/authlete/authlete-go/dto"
	"github.com/authlete/authlete-go/internal/httpconfig"
	"github.com/authlete/authlete-go/web"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"golang.org/x/sync/singleflight"
	jose "gopkg.in/square/go-jose.v2"
)

var errNoServiceAPIKey = errors.New("API version V3 requires the service API key to address a service")

type authLevel int

const (
	serviceLevel authLevel = iota
	ownerLevel
)

// Client calls the Authlete API. It is safe for concurrent use.
type Client struct {
	conf           config.Config
	version        config.APIVersion
	baseURL        string
	httpClient     *http.Client
	defaultHeaders http.Header
	loggers        ldlog.Loggers
	requests       singleflight.Group
}

// New creates a Client. The configuration is copied, so later changes to it have no effect on the
// client. An error is returned if the configuration cannot be used to call the API.
func New(conf config.Configuration, opts ...Option) (*Client, error) {
	o := options{loggers: ldlog.NewDisabledLoggers()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := config.ValidateForAPI(conf); err != nil {
		return nil, err
	}
	version, err := config.ResolveAPIVersion(conf)
	if err != nil {
		return nil, err
	}

	hc, err := httpconfig.NewHTTPConfig(o.httpConfig, o.loggers)
	if err != nil {
		return nil, err
	}
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = hc.Client()
	}

	c := &Client{
		conf:           config.Copy(conf),
		version:        version,
		httpClient:     httpClient,
		defaultHeaders: hc.DefaultHeaders,
		loggers:        o.loggers,
	}
	c.baseURL = strings.TrimSuffix(c.conf.GetBaseURL().GetOrElse(""), "/")
	o.loggers.Debugf("Created Authlete API client: version=%s base=%s", version, c.baseURL)
	return c, nil
}

// APIVersion returns the API version the client was configured with.
func (c *Client) APIVersion() config.APIVersion {
	return c.version
}

func (c *Client) authorization(level authLevel) (string, error) {
	if c.version == config.APIVersionV3 {
		return "Bearer " + c.conf.GetServiceAccessToken().GetOrElse(""), nil
	}
	if level == ownerLevel {
		if err := config.RequireServiceOwnerCredentials(c.conf); err != nil {
			return "", err
		}
		return web.NewBasicCredentials(c.conf.GetServiceOwnerAPIKey(), c.conf.GetServiceOwnerAPISecret()).Format(), nil
	}
	if err := config.RequireServiceCredentials(c.conf); err != nil {
		return "", err
	}
	return web.NewBasicCredentials(c.conf.GetServiceAPIKey(), c.conf.GetServiceAPISecret()).Format(), nil
}

// endpointPath maps an operation path such as "/auth/token" to its full path. V3 service-level paths
// are prefixed with the service API key.
func (c *Client) endpointPath(level authLevel, path string) (string, error) {
	if c.version == config.APIVersionV3 && level == serviceLevel {
		key := c.conf.GetServiceAPIKey().GetOrElse("")
		if key == "" {
			return "", errNoServiceAPIKey
		}
		return "/api/" + url.PathEscape(key) + path, nil
	}
	return "/api" + path, nil
}

func (c *Client) call(
	ctx context.Context,
	level authLevel,
	method web.HTTPMethod,
	path string,
	query url.Values,
	reqBody, respBody interface{},
) error {
	data, err := c.callRaw(ctx, level, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if respBody == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, respBody); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) callRaw(
	ctx context.Context,
	level authLevel,
	method web.HTTPMethod,
	path string,
	query url.Values,
	reqBody interface{},
) ([]byte, error) {
	auth, err := c.authorization(level)
	if err != nil {
		return nil, err
	}
	fullPath, err := c.endpointPath(level, path)
	if err != nil {
		return nil, err
	}
	target := c.baseURL + fullPath
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	headers := web.NewHTTPHeaders()
	for name, values := range c.defaultHeaders {
		for _, v := range values {
			headers.Add(name, v)
		}
	}
	headers.Add("Authorization", auth)
	headers.Add("Accept", "application/json")

	var body io.Reader
	if method.HasRequestBody() && reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		body = bytes.NewReader(encoded)
		headers.Add("Content-Type", "application/json")
	}

	req, err := http.NewRequestWithContext(ctx, method.String(), target, body)
	if err != nil {
		return nil, err
	}
	req.Header = headers.ToHTTPHeader()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(method.String(), fullPath, resp.StatusCode, responseHeaders(resp.Header), data)
		c.loggers.Warnf("Authlete API error: %s", apiErr)
		return nil, apiErr
	}
	if httpconfig.IsCachedResponse(resp) {
		c.loggers.Debugf("Response for %s served from cache", fullPath)
	}
	return data, nil
}

func responseHeaders(h http.Header) *web.HTTPHeaders {
	headers := web.NewHTTPHeaders()
	for name, values := range h {
		for _, v := range values {
			headers.Add(name, v)
		}
	}
	return headers
}

// coalescedGet performs a GET whose result is shared by all concurrent callers asking for the same
// path and query.
func (c *Client) coalescedGet(ctx context.Context, level authLevel, path string, query url.Values) (string, error) {
	key := path + "?" + query.Encode()
	v, err, _ := c.requests.Do(key, func() (interface{}, error) {
		data, err := c.callRaw(ctx, level, web.MethodGet, path, query, nil)
		return string(data), err
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func boolParam(b bool) string {
	return strconv.FormatBool(b)
}

func rangeParams(start, end int) url.Values {
	q := url.Values{}
	if start >= 0 && end > start {
		q.Set("start", strconv.Itoa(start))
		q.Set("end", strconv.Itoa(end))
	}
	return q
}

// Authorization calls /auth/authorization.
func (c *Client) Authorization(ctx context.Context, req *dto.AuthorizationRequest) (*dto.AuthorizationResponse, error) {
	var res dto.AuthorizationResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/authorization", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AuthorizationFail calls /auth/authorization/fail.
func (c *Client) AuthorizationFail(
	ctx context.Context,
	req *dto.AuthorizationFailRequest,
) (*dto.AuthorizationFailResponse, error) {
	var res dto.AuthorizationFailResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/authorization/fail", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AuthorizationIssue calls /auth/authorization/issue.
func (c *Client) AuthorizationIssue(
	ctx context.Context,
	req *dto.AuthorizationIssueRequest,
) (*dto.AuthorizationIssueResponse, error) {
	var res dto.AuthorizationIssueResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/authorization/issue", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Token calls /auth/token.
func (c *Client) Token(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	var res dto.TokenResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/token", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TokenFail calls /auth/token/fail.
func (c *Client) TokenFail(ctx context.Context, req *dto.TokenFailRequest) (*dto.TokenFailResponse, error) {
	var res dto.TokenFailResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/token/fail", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TokenIssue calls /auth/token/issue.
func (c *Client) TokenIssue(ctx context.Context, req *dto.TokenIssueRequest) (*dto.TokenIssueResponse, error) {
	var res dto.TokenIssueResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/token/issue", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Introspection calls /auth/introspection.
func (c *Client) Introspection(ctx context.Context, req *dto.IntrospectionRequest) (*dto.IntrospectionResponse, error) {
	var res dto.IntrospectionResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/introspection", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// StandardIntrospection calls /auth/introspection/standard, which implements RFC 7662.
func (c *Client) StandardIntrospection(
	ctx context.Context,
	req *dto.StandardIntrospectionRequest,
) (*dto.StandardIntrospectionResponse, error) {
	var res dto.StandardIntrospectionResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/introspection/standard", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Revocation calls /auth/revocation.
func (c *Client) Revocation(ctx context.Context, req *dto.RevocationRequest) (*dto.RevocationResponse, error) {
	var res dto.RevocationResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/revocation", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UserInfo calls /auth/userinfo.
func (c *Client) UserInfo(ctx context.Context, req *dto.UserInfoRequest) (*dto.UserInfoResponse, error) {
	var res dto.UserInfoResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/userinfo", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UserInfoIssue calls /auth/userinfo/issue.
func (c *Client) UserInfoIssue(ctx context.Context, req *dto.UserInfoIssueRequest) (*dto.UserInfoIssueResponse, error) {
	var res dto.UserInfoIssueResponse
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/auth/userinfo/issue", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetServiceConfiguration returns the OpenID Provider metadata of the service as a JSON document.
// Concurrent calls with the same arguments share a single request.
func (c *Client) GetServiceConfiguration(ctx context.Context, pretty bool) (string, error) {
	return c.coalescedGet(ctx, serviceLevel, "/service/configuration", url.Values{"pretty": {boolParam(pretty)}})
}

// GetServiceJWKS returns the JWK Set of the service. Concurrent calls with the same arguments share
// a single request.
func (c *Client) GetServiceJWKS(ctx context.Context, pretty, includePrivateKeys bool) (string, error) {
	return c.coalescedGet(ctx, serviceLevel, "/service/jwks/get", url.Values{
		"pretty":             {boolParam(pretty)},
		"includePrivateKeys": {boolParam(includePrivateKeys)},
	})
}

// GetServiceJWKSet is GetServiceJWKS decoded into a key set. Private keys are not requested.
func (c *Client) GetServiceJWKSet(ctx context.Context) (*jose.JSONWebKeySet, error) {
	doc, err := c.GetServiceJWKS(ctx, false, false)
	if err != nil {
		return nil, err
	}
	var jwks jose.JSONWebKeySet
	if err := json.Unmarshal([]byte(doc), &jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWK Set: %w", err)
	}
	return &jwks, nil
}

// GetClient returns the client with the given ID or client ID alias.
func (c *Client) GetClient(ctx context.Context, clientID string) (*dto.Client, error) {
	var res dto.Client
	if err := c.call(ctx, serviceLevel, web.MethodGet, "/client/get/"+url.PathEscape(clientID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetClientList returns clients of the service. If developer is not empty only that developer's
// clients are returned. A range is requested only when end > start >= 0.
func (c *Client) GetClientList(ctx context.Context, developer string, start, end int) (*dto.ClientListResponse, error) {
	path := "/client/get/list"
	if developer != "" {
		path += "/" + url.PathEscape(developer)
	}
	var res dto.ClientListResponse
	if err := c.call(ctx, serviceLevel, web.MethodGet, path, rangeParams(start, end), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateClient registers a new client and returns it as stored by Authlete.
func (c *Client) CreateClient(ctx context.Context, client *dto.Client) (*dto.Client, error) {
	var res dto.Client
	if err := c.call(ctx, serviceLevel, web.MethodPost, "/client/create", nil, client, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteClient deletes the client with the given ID or client ID alias.
func (c *Client) DeleteClient(ctx context.Context, clientID string) error {
	return c.call(ctx, serviceLevel, web.MethodDelete, "/client/delete/"+url.PathEscape(clientID), nil, nil, nil)
}

// GetService returns the service with the given API key. This is a service owner operation.
func (c *Client) GetService(ctx context.Context, serviceID string) (*dto.Service, error) {
	var res dto.Service
	if err := c.call(ctx, ownerLevel, web.MethodGet, "/service/get/"+url.PathEscape(serviceID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetServiceList returns the services of the service owner. A range is requested only when
// end > start >= 0.
func (c *Client) GetServiceList(ctx context.Context, start, end int) (*dto.ServiceListResponse, error) {
	var res dto.ServiceListResponse
	if err := c.call(ctx, ownerLevel, web.MethodGet, "/service/get/list", rangeParams(start, end), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
