// Package config provides the credential bundle that the Authlete API client uses to authenticate,
// and the three ways of populating it: environment variables, an INI file, or explicit setters.
package config

import (
	"fmt"
	"strings"

	ct "github.com/launchdarkly/go-configtypes"
)

const (
	// DefaultBaseURL is the base URL of the Authlete API that the file source uses when the file
	// does not specify base_url. The other sources have no default.
	DefaultBaseURL = "https://api.authlete.com"

	// DefaultConfigurationFile is the name of the file read by the file source if neither an explicit
	// name nor the AUTHLETE_CONFIGURATION_FILE variable is given.
	DefaultConfigurationFile = "authlete.ini"

	// ConfigurationFileVar is the environment variable that overrides DefaultConfigurationFile.
	ConfigurationFileVar = "AUTHLETE_CONFIGURATION_FILE"
)

// APIVersion identifies a generation of the Authlete API.
type APIVersion string

const (
	// APIVersionV2 uses Basic authentication with API keys and secrets. This is assumed when no
	// version is configured.
	APIVersionV2 APIVersion = "V2"
	// APIVersionV3 uses a Bearer service access token and service-scoped paths.
	APIVersionV3 APIVersion = "V3"
)

// ParseAPIVersion converts a configured version string, ignoring case. An empty string means V2.
func ParseAPIVersion(s string) (APIVersion, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(APIVersionV2):
		return APIVersionV2, nil
	case string(APIVersionV3):
		return APIVersionV3, nil
	}
	return "", fmt.Errorf("%q is not a supported API version", s)
}

// Configuration is the read interface for a credential bundle. Every value is optional; an undefined
// value means the source did not provide it.
type Configuration interface {
	GetBaseURL() ct.OptString
	GetServiceOwnerAPIKey() ct.OptString
	GetServiceOwnerAPISecret() ct.OptString
	GetServiceAPIKey() ct.OptString
	GetServiceAPISecret() ct.OptString
	GetServiceAccessToken() ct.OptString
	GetAPIVersion() ct.OptString
}

// Config is the concrete credential bundle shared by all configuration sources.
//
// The conf tags name the environment variables read by LoadConfigFromEnvironment; the file keys are
// listed in config_from_file.go. The zero value has every field undefined.
type Config struct {
	BaseURL               ct.OptString `conf:"AUTHLETE_BASE_URL"`
	ServiceOwnerAPIKey    ct.OptString `conf:"AUTHLETE_SERVICEOWNER_APIKEY"`
	ServiceOwnerAPISecret ct.OptString `conf:"AUTHLETE_SERVICEOWNER_APISECRET"`
	ServiceAPIKey         ct.OptString `conf:"AUTHLETE_SERVICE_APIKEY"`
	ServiceAPISecret      ct.OptString `conf:"AUTHLETE_SERVICE_APISECRET"`
	ServiceAccessToken    ct.OptString `conf:"AUTHLETE_SERVICE_ACCESS_TOKEN"`
	APIVersion            ct.OptString `conf:"AUTHLETE_API_VERSION"`
}

// GetBaseURL returns the base URL of the Authlete API.
func (c Config) GetBaseURL() ct.OptString { return c.BaseURL }

// GetServiceOwnerAPIKey returns the API key of the service owner.
func (c Config) GetServiceOwnerAPIKey() ct.OptString { return c.ServiceOwnerAPIKey }

// GetServiceOwnerAPISecret returns the API secret of the service owner.
func (c Config) GetServiceOwnerAPISecret() ct.OptString { return c.ServiceOwnerAPISecret }

// GetServiceAPIKey returns the API key of the service.
func (c Config) GetServiceAPIKey() ct.OptString { return c.ServiceAPIKey }

// GetServiceAPISecret returns the API secret of the service.
func (c Config) GetServiceAPISecret() ct.OptString { return c.ServiceAPISecret }

// GetServiceAccessToken returns the service access token used by API version V3.
func (c Config) GetServiceAccessToken() ct.OptString { return c.ServiceAccessToken }

// GetAPIVersion returns the configured API version string, e.g. "V3".
func (c Config) GetAPIVersion() ct.OptString { return c.APIVersion }

// String describes the configuration with secrets and tokens masked, so that it can be logged.
func (c Config) String() string {
	return fmt.Sprintf(
		"{BaseURL:%s ServiceOwnerAPIKey:%s ServiceOwnerAPISecret:%s ServiceAPIKey:%s ServiceAPISecret:%s ServiceAccessToken:%s APIVersion:%s}",
		describe(c.BaseURL, false),
		describe(c.ServiceOwnerAPIKey, false),
		describe(c.ServiceOwnerAPISecret, true),
		describe(c.ServiceAPIKey, false),
		describe(c.ServiceAPISecret, true),
		describe(c.ServiceAccessToken, true),
		describe(c.APIVersion, false),
	)
}

func describe(o ct.OptString, secret bool) string {
	if !o.IsDefined() {
		return "<unset>"
	}
	if secret {
		return "***"
	}
	return o.GetOrElse("")
}

// Copy returns an independent Config with the same values as any Configuration.
func Copy(c Configuration) Config {
	if cc, ok := c.(Config); ok {
		return cc
	}
	if cp, ok := c.(*Config); ok && cp != nil {
		return *cp
	}
	return Config{
		BaseURL:               c.GetBaseURL(),
		ServiceOwnerAPIKey:    c.GetServiceOwnerAPIKey(),
		ServiceOwnerAPISecret: c.GetServiceOwnerAPISecret(),
		ServiceAPIKey:         c.GetServiceAPIKey(),
		ServiceAPISecret:      c.GetServiceAPISecret(),
		ServiceAccessToken:    c.GetServiceAccessToken(),
		APIVersion:            c.GetAPIVersion(),
	}
}
