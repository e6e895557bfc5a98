package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/authlete/authlete-go/authletetest"
	"github.com/authlete/authlete-go/config"
	"github.com/authlete/authlete-go/dto"
	"github.com/authlete/authlete-go/web"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	basicServiceAuth = "Basic a2V5OnNlY3JldA=="
	basicOwnerAuth   = "Basic b3duZXI6cHc="
)

func v2Config(baseURL string) *config.Config {
	return config.NewSettableConfig().
		SetBaseURL(baseURL).
		SetServiceAPIKey("key").
		SetServiceAPISecret("secret").
		SetServiceOwnerAPIKey("owner").
		SetServiceOwnerAPISecret("pw")
}

func v3Config(baseURL string) *config.Config {
	return config.NewSettableConfig().
		SetBaseURL(baseURL).
		SetAPIVersion("V3").
		SetServiceAPIKey("715948317").
		SetServiceAccessToken("access-token")
}

func withClient(t *testing.T, makeConfig func(string) *config.Config, fn func(*authletetest.Server, *Client)) {
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		client, err := New(makeConfig(s.URL))
		require.NoError(t, err)
		fn(s, client)
	})
}

func TestNewRejectsUnusableConfiguration(t *testing.T) {
	_, err := New(config.NewSettableConfig())
	assert.Error(t, err)

	_, err = New(config.NewSettableConfig().SetBaseURL("https://api.authlete.com").SetAPIVersion("V3"))
	var missing *config.MissingCredentialsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, config.APIVersionV3, missing.Version)

	_, err = New(v2Config("https://api.authlete.com").SetAPIVersion("V9"))
	assert.Error(t, err)
}

func TestNewRejectsInvalidHTTPConfig(t *testing.T) {
	conf := v2Config("https://api.authlete.com")
	_, err := New(conf, WithHTTPConfig(config.HTTPConfig{Proxy: config.ProxyConfig{NTLMAuth: true}}))
	assert.Error(t, err)
}

func TestClientCopiesConfiguration(t *testing.T) {
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		s.Respond(web.MethodPost, "/api/auth/revocation", http.StatusOK, dto.RevocationResponse{Action: dto.RevocationActionOK})
		conf := v2Config(s.URL)
		client, err := New(conf)
		require.NoError(t, err)
		conf.SetServiceAPIKey("changed")

		_, err = client.Revocation(context.Background(), &dto.RevocationRequest{Parameters: "token=x"})
		require.NoError(t, err)
		assert.Equal(t, basicServiceAuth, s.ExpectRequest(t).Authorization)
	})
}

func TestV2ServiceOperationUsesServiceCredentials(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodPost, "/api/auth/introspection", http.StatusOK, `{
			"resultCode": "A056001",
			"resultMessage": "[A056001] The access token is valid.",
			"action": "OK",
			"clientId": 57297408867,
			"subject": "john",
			"scopes": ["openid", "profile"],
			"existent": true,
			"usable": true,
			"sufficient": true
		}`)

		res, err := client.Introspection(context.Background(), &dto.IntrospectionRequest{
			Token:  "Ohw3sgIXRDrOF8C6ZtW2Ka",
			Scopes: []string{"profile"},
		})
		require.NoError(t, err)
		assert.Equal(t, dto.IntrospectionActionOK, res.Action)
		assert.Equal(t, "A056001", res.GetResultCode())
		assert.Equal(t, int64(57297408867), res.ClientID)
		assert.Equal(t, "john", res.Subject)
		assert.True(t, res.Usable)

		r := s.ExpectRequest(t)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/auth/introspection", r.Path)
		assert.Equal(t, basicServiceAuth, r.Authorization)
		assert.JSONEq(t, `{"token":"Ohw3sgIXRDrOF8C6ZtW2Ka","scopes":["profile"]}`, string(r.Body))
	})
}

func TestV2OwnerOperationUsesOwnerCredentials(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodGet, "/api/service/get/{apiKey}", http.StatusOK, dto.Service{APIKey: 21653835348762, ServiceName: "My Service"})

		svc, err := client.GetService(context.Background(), "21653835348762")
		require.NoError(t, err)
		assert.Equal(t, "My Service", svc.ServiceName)

		r := s.ExpectRequest(t)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/service/get/21653835348762", r.Path)
		assert.Equal(t, basicOwnerAuth, r.Authorization)
		assert.Len(t, r.Body, 0)
	})
}

func TestV2OwnerOperationWithoutOwnerCredentials(t *testing.T) {
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		conf := config.NewSettableConfig().SetBaseURL(s.URL).SetServiceAPIKey("key").SetServiceAPISecret("secret")
		client, err := New(conf)
		require.NoError(t, err)

		_, err = client.GetServiceList(context.Background(), -1, -1)
		var missing *config.MissingCredentialsError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"service owner API key", "service owner API secret"}, missing.Missing)
		s.ExpectNoMoreRequests(t)
	})
}

func TestV2ServiceOperationWithoutServiceCredentials(t *testing.T) {
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		conf := config.NewSettableConfig().SetBaseURL(s.URL).SetServiceOwnerAPIKey("owner").SetServiceOwnerAPISecret("pw")
		client, err := New(conf)
		require.NoError(t, err)

		_, err = client.Token(context.Background(), &dto.TokenRequest{Parameters: "grant_type=client_credentials"})
		var missing *config.MissingCredentialsError
		assert.True(t, errors.As(err, &missing))
		s.ExpectNoMoreRequests(t)
	})
}

func TestV3ServiceOperationUsesBearerTokenAndServicePath(t *testing.T) {
	withClient(t, v3Config, func(s *authletetest.Server, client *Client) {
		assert.Equal(t, config.APIVersionV3, client.APIVersion())
		s.Respond(web.MethodPost, "/api/{serviceKey}/auth/token", http.StatusOK, dto.TokenResponse{
			Action:      dto.TokenActionOK,
			AccessToken: "issued",
		})

		res, err := client.Token(context.Background(), &dto.TokenRequest{
			Parameters: "grant_type=authorization_code&code=abc",
			ClientID:   "client",
		})
		require.NoError(t, err)
		assert.Equal(t, dto.TokenActionOK, res.Action)
		assert.Equal(t, "issued", res.AccessToken)

		r := s.ExpectRequest(t)
		assert.Equal(t, "/api/715948317/auth/token", r.Path)
		assert.Equal(t, "Bearer access-token", r.Authorization)
	})
}

func TestV3OwnerOperationHasNoServicePrefix(t *testing.T) {
	withClient(t, v3Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodGet, "/api/service/get/list", http.StatusOK, dto.ServiceListResponse{
			ListRange: dto.ListRange{Start: 0, End: 5, TotalCount: 1},
			Services:  []dto.Service{{ServiceName: "one"}},
		})

		res, err := client.GetServiceList(context.Background(), 0, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalCount)
		require.Len(t, res.Services, 1)

		r := s.ExpectRequest(t)
		assert.Equal(t, "/api/service/get/list", r.Path)
		assert.Equal(t, "0", r.Query.Get("start"))
		assert.Equal(t, "5", r.Query.Get("end"))
		assert.Equal(t, "Bearer access-token", r.Authorization)
	})
}

func TestV3ServiceOperationWithoutServiceAPIKey(t *testing.T) {
	conf := config.NewSettableConfig().SetBaseURL("http://localhost").SetAPIVersion("v3").SetServiceAccessToken("t")
	client, err := New(conf)
	require.NoError(t, err)
	_, err = client.UserInfo(context.Background(), &dto.UserInfoRequest{Token: "x"})
	assert.Equal(t, errNoServiceAPIKey, err)
}

func TestErrorStatusReturnsAPIError(t *testing.T) {
	mockLog := ldlogtest.NewMockLog()
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		client, err := New(v2Config(s.URL), WithLoggers(mockLog.Loggers))
		require.NoError(t, err)
		s.Fail(web.MethodPost, "/api/auth/authorization", http.StatusBadRequest, "A004201", "bad parameters")

		_, err = client.Authorization(context.Background(), &dto.AuthorizationRequest{Parameters: "response_type=code"})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "A004201", apiErr.ResultCode)
		assert.Equal(t, "bad parameters", apiErr.ResultMessage)
		assert.Equal(t, "/api/auth/authorization", apiErr.Path)
		contentType, _ := apiErr.Headers.GetFirst("content-type")
		assert.Equal(t, "application/json", contentType)
		assert.Contains(t, err.Error(), "bad parameters")
	})
	mockLog.AssertMessageMatch(t, true, ldlog.Warn, "returned status 400")
}

func TestErrorStatusWithNonJSONBody(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodPost, "/api/auth/userinfo/issue", http.StatusBadGateway, "upstream failure")

		_, err := client.UserInfoIssue(context.Background(), &dto.UserInfoIssueRequest{Token: "x"})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "upstream failure", apiErr.Body)
		assert.Equal(t, "", apiErr.ResultCode)
		assert.Equal(t, "Authlete API POST /api/auth/userinfo/issue returned status 502", err.Error())
	})
}

func TestUndecodableResponse(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodPost, "/api/auth/token/issue", http.StatusOK, "not json")
		_, err := client.TokenIssue(context.Background(), &dto.TokenIssueRequest{Ticket: "t", Subject: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})
}

func TestAuthorizationFlowOperations(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodPost, "/api/auth/authorization/fail", http.StatusOK,
			dto.AuthorizationFailResponse{Action: dto.AuthorizationFailActionLocation})
		s.Respond(web.MethodPost, "/api/auth/authorization/issue", http.StatusOK,
			dto.AuthorizationIssueResponse{Action: dto.AuthorizationIssueActionLocation})

		failRes, err := client.AuthorizationFail(context.Background(), &dto.AuthorizationFailRequest{
			Ticket: "ticket",
			Reason: dto.AuthorizationFailReasonDenied,
		})
		require.NoError(t, err)
		assert.Equal(t, dto.AuthorizationFailActionLocation, failRes.Action)
		r := s.ExpectRequest(t)
		assert.Equal(t, "/api/auth/authorization/fail", r.Path)
		assert.JSONEq(t, `{"ticket":"ticket","reason":"DENIED"}`, string(r.Body))

		issueRes, err := client.AuthorizationIssue(context.Background(), &dto.AuthorizationIssueRequest{
			Ticket:  "ticket",
			Subject: "john",
		})
		require.NoError(t, err)
		assert.Equal(t, dto.AuthorizationIssueActionLocation, issueRes.Action)
		assert.Equal(t, "/api/auth/authorization/issue", s.ExpectRequest(t).Path)
	})
}

func TestTokenFailAndStandardIntrospection(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodPost, "/api/auth/token/fail", http.StatusOK, dto.TokenFailResponse{Action: dto.TokenFailActionBadRequest})
		s.Respond(web.MethodPost, "/api/auth/introspection/standard", http.StatusOK,
			dto.StandardIntrospectionResponse{Action: dto.StandardIntrospectionActionOK, ResponseContent: `{"active":true}`})

		failRes, err := client.TokenFail(context.Background(), &dto.TokenFailRequest{Ticket: "t", Reason: dto.TokenFailReasonUnknown})
		require.NoError(t, err)
		assert.Equal(t, dto.TokenFailActionBadRequest, failRes.Action)
		assert.Equal(t, "/api/auth/token/fail", s.ExpectRequest(t).Path)

		stdRes, err := client.StandardIntrospection(context.Background(),
			&dto.StandardIntrospectionRequest{Parameters: "token=abc"})
		require.NoError(t, err)
		assert.Equal(t, `{"active":true}`, stdRes.ResponseContent)
		assert.Equal(t, "/api/auth/introspection/standard", s.ExpectRequest(t).Path)
	})
}

func TestServiceConfigurationAndJWKS(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodGet, "/api/service/configuration", http.StatusOK, `{"issuer":"https://as.example.com"}`)
		s.Respond(web.MethodGet, "/api/service/jwks/get", http.StatusOK, `{"keys":[]}`)

		doc, err := client.GetServiceConfiguration(context.Background(), true)
		require.NoError(t, err)
		assert.JSONEq(t, `{"issuer":"https://as.example.com"}`, doc)
		r := s.ExpectRequest(t)
		assert.Equal(t, "true", r.Query.Get("pretty"))

		jwks, err := client.GetServiceJWKS(context.Background(), false, true)
		require.NoError(t, err)
		assert.JSONEq(t, `{"keys":[]}`, jwks)
		r = s.ExpectRequest(t)
		assert.Equal(t, "false", r.Query.Get("pretty"))
		assert.Equal(t, "true", r.Query.Get("includePrivateKeys"))
	})
}

func TestGetServiceJWKSet(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodGet, "/api/service/jwks/get", http.StatusOK, `{"keys":[{
			"kty": "RSA",
			"kid": "2011-04-29",
			"alg": "RS256",
			"use": "sig",
			"n": "0vx7agoebGcQSuuPiLJXZptN9nndrQmbXEps2aiAFbWhM78LhWx4cbbfAAtVT86zwu1RK7aPFFxuhDR1L6tSoc_BJECPebWKRXjBZCiFV4n3oknjhMstn64tZ_2W-5JsGY4Hc5n9yBXArwl93lqt7_RN5w6Cf0h4QyQ5v-65YGjQR0_FDW2QvzqY368QQMicAtaSqzs8KJZgnYb9c7d0zgdAZHzu6qMQvRL5hajrn1n91CbOpbISD08qNLyrdkt-bFTWhAI4vMQFh6WeZu0fM4lFd2NcRwr3XPksINHaQ-G_xBniIqbw0Ls1jF44-csFCur-kEgU8awapJzKnqDKgw",
			"e": "AQAB"
		}]}`)

		jwks, err := client.GetServiceJWKSet(context.Background())
		require.NoError(t, err)
		keys := jwks.Key("2011-04-29")
		require.Len(t, keys, 1)
		assert.Equal(t, "RS256", keys[0].Algorithm)
		assert.True(t, keys[0].IsPublic())

		r := s.ExpectRequest(t)
		assert.Equal(t, "false", r.Query.Get("includePrivateKeys"))
	})
}

func TestGetServiceJWKSetWithInvalidDocument(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodGet, "/api/service/jwks/get", http.StatusOK, `{"keys":[{"kty":"UNKNOWN"}]}`)
		_, err := client.GetServiceJWKSet(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode JWK Set")
	})
}

func TestConcurrentConfigurationRequestsSucceed(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodGet, "/api/service/configuration", http.StatusOK, `{"issuer":"x"}`)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doc, err := client.GetServiceConfiguration(context.Background(), false)
				assert.NoError(t, err)
				assert.JSONEq(t, `{"issuer":"x"}`, doc)
			}()
		}
		wg.Wait()
	})
}

func TestClientManagement(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		s.Respond(web.MethodPost, "/api/client/create", http.StatusOK, dto.Client{ClientID: 1234, ClientName: "app"})
		s.Respond(web.MethodGet, "/api/client/get/list/{developer}", http.StatusOK, dto.ClientListResponse{
			Developer: "dev",
			Clients:   []dto.Client{{ClientID: 1234}},
		})
		s.Respond(web.MethodGet, "/api/client/get/{clientId}", http.StatusOK, dto.Client{ClientID: 1234, ClientName: "app"})
		s.Respond(web.MethodDelete, "/api/client/delete/{clientId}", http.StatusNoContent, nil)

		created, err := client.CreateClient(context.Background(), &dto.Client{ClientName: "app", ClientType: dto.ClientTypeConfidential})
		require.NoError(t, err)
		assert.Equal(t, int64(1234), created.ClientID)
		r := s.ExpectRequest(t)
		var sent dto.Client
		require.NoError(t, json.Unmarshal(r.Body, &sent))
		assert.Equal(t, "app", sent.ClientName)

		list, err := client.GetClientList(context.Background(), "dev", -1, -1)
		require.NoError(t, err)
		assert.Equal(t, "dev", list.Developer)
		r = s.ExpectRequest(t)
		assert.Equal(t, "/api/client/get/list/dev", r.Path)
		assert.Len(t, r.Query, 0)

		got, err := client.GetClient(context.Background(), "1234")
		require.NoError(t, err)
		assert.Equal(t, "app", got.ClientName)
		assert.Equal(t, "/api/client/get/1234", s.ExpectRequest(t).Path)

		require.NoError(t, client.DeleteClient(context.Background(), "1234"))
		r = s.ExpectRequest(t)
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/client/delete/1234", r.Path)
	})
}

func TestBaseURLTrailingSlashIsIgnored(t *testing.T) {
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		s.Respond(web.MethodPost, "/api/auth/userinfo", http.StatusOK, dto.UserInfoResponse{Action: dto.UserInfoActionOK})
		client, err := New(v2Config(s.URL + "/"))
		require.NoError(t, err)

		_, err = client.UserInfo(context.Background(), &dto.UserInfoRequest{Token: "x"})
		require.NoError(t, err)
		assert.Equal(t, "/api/auth/userinfo", s.ExpectRequest(t).Path)
	})
}

func TestWithHTTPClient(t *testing.T) {
	authletetest.WithServer(ldlog.NewDisabledLoggers(), func(s *authletetest.Server) {
		s.Respond(web.MethodPost, "/api/auth/userinfo", http.StatusOK, dto.UserInfoResponse{Action: dto.UserInfoActionOK})
		httpClient := &http.Client{}
		client, err := New(v2Config(s.URL), WithHTTPClient(httpClient))
		require.NoError(t, err)
		assert.Same(t, httpClient, client.httpClient)

		_, err = client.UserInfo(context.Background(), &dto.UserInfoRequest{Token: "x"})
		require.NoError(t, err)
	})
}

func TestCanceledContext(t *testing.T) {
	withClient(t, v2Config, func(s *authletetest.Server, client *Client) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Token(ctx, &dto.TokenRequest{Parameters: "grant_type=password"})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
