package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	ct "github.com/launchdarkly/go-configtypes"
)

var (
	errBaseURLMissing = errors.New("base URL is not configured")
	errBaseURLInvalid = errors.New("base URL must be an absolute http or https URL")
)

// MissingCredentialsError reports the credentials that an operation needs but the configuration
// does not define.
type MissingCredentialsError struct {
	Version APIVersion
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("API version %s requires %s", e.Version, strings.Join(e.Missing, ", "))
}

// ResolveAPIVersion returns the API version named by the configuration, defaulting to V2.
func ResolveAPIVersion(c Configuration) (APIVersion, error) {
	return ParseAPIVersion(c.GetAPIVersion().GetOrElse(""))
}

// ValidateForAPI checks that a configuration can be used to construct an API client: the base URL
// must be an absolute URL, the API version must be known, and the credentials for that version must
// be present. For V3 that is the service access token; for V2 it is at least one complete key/secret
// pair, since each call checks the pair it needs when it is made.
func ValidateForAPI(c Configuration) error {
	baseURL := c.GetBaseURL()
	if !baseURL.IsDefined() || baseURL.GetOrElse("") == "" {
		return errBaseURLMissing
	}
	u, err := url.Parse(baseURL.GetOrElse(""))
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return errBaseURLInvalid
	}

	version, err := ResolveAPIVersion(c)
	if err != nil {
		return err
	}

	if version == APIVersionV3 {
		if !hasValue(c.GetServiceAccessToken()) {
			return &MissingCredentialsError{Version: version, Missing: []string{"service access token"}}
		}
		return nil
	}

	if err := RequireServiceCredentials(c); err == nil {
		return nil
	}
	if err := RequireServiceOwnerCredentials(c); err == nil {
		return nil
	}
	return &MissingCredentialsError{
		Version: version,
		Missing: []string{"service API key and secret, or service owner API key and secret"},
	}
}

// RequireServiceCredentials returns an error unless both the service API key and secret are defined.
func RequireServiceCredentials(c Configuration) error {
	return requirePair(c.GetServiceAPIKey(), c.GetServiceAPISecret(), "service API key", "service API secret")
}

// RequireServiceOwnerCredentials returns an error unless both the service owner API key and secret
// are defined.
func RequireServiceOwnerCredentials(c Configuration) error {
	return requirePair(c.GetServiceOwnerAPIKey(), c.GetServiceOwnerAPISecret(),
		"service owner API key", "service owner API secret")
}

func requirePair(key, secret ct.OptString, keyName, secretName string) error {
	var missing []string
	if key.GetOrElse("") == "" {
		missing = append(missing, keyName)
	}
	if secret.GetOrElse("") == "" {
		missing = append(missing, secretName)
	}
	if len(missing) > 0 {
		return &MissingCredentialsError{Version: APIVersionV2, Missing: missing}
	}
	return nil
}

func hasValue(o ct.OptString) bool {
	return o.GetOrElse("") != ""
}
