package config

import (
	"errors"
	"time"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// DefaultTimeout is used for API requests when HTTPConfig.Timeout is not set.
const DefaultTimeout = 30 * time.Second

// HTTPConfig contains options for the HTTP client that talks to the Authlete API. It is separate from
// the credential bundle; the zero value means a direct connection with default timeouts.
type HTTPConfig struct {
	Proxy ProxyConfig
	// ConnectTimeout limits how long establishing a connection may take.
	ConnectTimeout ct.OptDuration `conf:"AUTHLETE_HTTP_CONNECT_TIMEOUT"`
	// Timeout limits a whole request including reading the response.
	Timeout ct.OptDuration `conf:"AUTHLETE_HTTP_TIMEOUT"`
	// CacheResponses enables an in-memory cache for GET responses that the server marks cacheable.
	CacheResponses bool `conf:"AUTHLETE_HTTP_CACHE"`
}

// ProxyConfig represents the supported proxy options.
type ProxyConfig struct {
	URL         ct.OptURLAbsolute `conf:"AUTHLETE_PROXY_URL"`
	NTLMAuth    bool              `conf:"AUTHLETE_PROXY_NTLM_AUTH"`
	User        string            `conf:"AUTHLETE_PROXY_USER"`
	Password    string            `conf:"AUTHLETE_PROXY_PASSWORD"`
	Domain      string            `conf:"AUTHLETE_PROXY_DOMAIN"`
	CACertFiles ct.OptStringList  `conf:"AUTHLETE_PROXY_CA_CERTS"`
}

var (
	errProxyAuthWithoutProxyURL        = errors.New("cannot specify proxy authentication without a proxy URL")
	errNTLMProxyAuthWithoutCredentials = errors.New("NTLM proxy authentication requires username and password")
)

// LoadHTTPConfigFromEnvironment sets fields of an HTTPConfig from the AUTHLETE_HTTP_* and
// AUTHLETE_PROXY_* environment variables, then validates it.
func LoadHTTPConfigFromEnvironment(c *HTTPConfig, loggers ldlog.Loggers) error {
	reader := ct.NewVarReaderFromValues(nonEmptyEnvironment())
	reader.ReadStruct(c, false)
	reader.ReadStruct(&c.Proxy, false)
	if !reader.Result().OK() {
		return reader.Result().GetError()
	}
	if err := ValidateHTTPConfig(c); err != nil {
		return err
	}
	if c.Proxy.URL.IsDefined() {
		loggers.Debugf("Proxy configured from environment: %s", c.Proxy.URL.Get().Redacted())
	}
	return nil
}

// ValidateHTTPConfig checks the combination of proxy options.
func ValidateHTTPConfig(c *HTTPConfig) error {
	if c.Proxy.NTLMAuth {
		if !c.Proxy.URL.IsDefined() {
			return errProxyAuthWithoutProxyURL
		}
		if c.Proxy.User == "" || c.Proxy.Password == "" {
			return errNTLMProxyAuthWithoutCredentials
		}
	}
	return nil
}
