// Package httpconfig builds the HTTP client that the Authlete API client uses.
package httpconfig

import (
	"net/http"
	"net/url"
	"time"

	"github.com/authlete/authlete-go/config"
	"github.com/authlete/authlete-go/internal/logging"
	"github.com/authlete/authlete-go/internal/version"

	"github.com/gregjones/httpcache"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-server-sdk/v7/ldhttp"
	"github.com/launchdarkly/go-server-sdk/v7/ldntlm"
)

// DefaultConnectTimeout is used when config.HTTPConfig.ConnectTimeout is not set.
const DefaultConnectTimeout = 10 * time.Second

// HTTPConfig encapsulates config.HTTPConfig plus the values derived from it.
type HTTPConfig struct {
	config.HTTPConfig
	ProxyURL       *url.URL
	DefaultHeaders http.Header
	clientFactory  func() *http.Client
	loggers        ldlog.Loggers
}

// NewHTTPConfig validates all of the HTTP-related options and returns an HTTPConfig if successful.
func NewHTTPConfig(httpConfig config.HTTPConfig, loggers ldlog.Loggers) (HTTPConfig, error) {
	ret := HTTPConfig{HTTPConfig: httpConfig, loggers: loggers}
	ret.DefaultHeaders = make(http.Header)
	ret.DefaultHeaders.Set("User-Agent", "AuthleteGoSDK/"+version.Version)

	if err := config.ValidateHTTPConfig(&httpConfig); err != nil {
		return ret, err
	}

	proxyConfig := httpConfig.Proxy
	if proxyConfig.URL.IsDefined() {
		ret.ProxyURL = proxyConfig.URL.Get()
		loggers.Infof("Using proxy server at %s", ret.ProxyURL.Redacted())
	}

	transportOpts := []ldhttp.TransportOption{
		ldhttp.ConnectTimeoutOption(httpConfig.ConnectTimeout.GetOrElse(DefaultConnectTimeout)),
	}
	for _, filePath := range proxyConfig.CACertFiles.Values() {
		if filePath != "" {
			transportOpts = append(transportOpts, ldhttp.CACertFileOption(filePath))
		}
	}
	timeout := httpConfig.Timeout.GetOrElse(config.DefaultTimeout)

	if proxyConfig.NTLMAuth {
		factory, err := ldntlm.NewNTLMProxyHTTPClientFactory(ret.ProxyURL.String(),
			proxyConfig.User, proxyConfig.Password, proxyConfig.Domain, transportOpts...)
		if err != nil {
			return ret, err
		}
		ret.clientFactory = func() *http.Client {
			client := factory()
			client.Transport = ret.wrapTransport(client.Transport)
			client.Timeout = timeout
			return client
		}
		loggers.Info("NTLM proxy authentication enabled")
		return ret, nil
	}

	if ret.ProxyURL != nil {
		transportOpts = append(transportOpts, ldhttp.ProxyOption(*ret.ProxyURL))
	}
	// Build one transport up front so that bad CA files are reported here rather than on first use.
	if _, _, err := ldhttp.NewHTTPTransport(transportOpts...); err != nil {
		return ret, err
	}
	ret.clientFactory = func() *http.Client {
		transport, _, _ := ldhttp.NewHTTPTransport(transportOpts...)
		return &http.Client{
			Transport: ret.wrapTransport(transport),
			Timeout:   timeout,
		}
	}
	return ret, nil
}

func (c HTTPConfig) wrapTransport(base http.RoundTripper) http.RoundTripper {
	rt := logging.RequestLoggerTransport(c.loggers, base)
	if c.CacheResponses {
		cachingTransport := httpcache.NewMemoryCacheTransport()
		cachingTransport.Transport = rt
		return cachingTransport
	}
	return rt
}

// Client creates a new HTTP client instance.
func (c HTTPConfig) Client() *http.Client {
	if c.clientFactory == nil {
		return &http.Client{
			Transport: c.wrapTransport(http.DefaultTransport),
			Timeout:   config.DefaultTimeout,
		}
	}
	return c.clientFactory()
}

// IsCachedResponse reports whether a response was served from the response cache.
func IsCachedResponse(resp *http.Response) bool {
	return resp != nil && resp.Header.Get(httpcache.XFromCache) != ""
}
