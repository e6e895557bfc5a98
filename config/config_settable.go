package config

import ct "github.com/launchdarkly/go-configtypes"

// NewSettableConfig returns a Config with every field undefined, to be filled in with the Set methods.
//
//	conf := config.NewSettableConfig().
//		SetBaseURL("https://api.authlete.com").
//		SetServiceAPIKey("21653835348762").
//		SetServiceAPISecret("uE4NgqeIpuSV_XejQ7Ds3jsgA1yXhjR1MXJ1LbPuyls")
//
// Assigning ct.OptString{} to a field directly makes it undefined again.
func NewSettableConfig() *Config {
	return &Config{}
}

// SetBaseURL sets the base URL and returns the same instance.
func (c *Config) SetBaseURL(value string) *Config {
	c.BaseURL = ct.NewOptString(value)
	return c
}

// SetServiceOwnerAPIKey sets the service owner API key and returns the same instance.
func (c *Config) SetServiceOwnerAPIKey(value string) *Config {
	c.ServiceOwnerAPIKey = ct.NewOptString(value)
	return c
}

// SetServiceOwnerAPISecret sets the service owner API secret and returns the same instance.
func (c *Config) SetServiceOwnerAPISecret(value string) *Config {
	c.ServiceOwnerAPISecret = ct.NewOptString(value)
	return c
}

// SetServiceAPIKey sets the service API key and returns the same instance.
func (c *Config) SetServiceAPIKey(value string) *Config {
	c.ServiceAPIKey = ct.NewOptString(value)
	return c
}

// SetServiceAPISecret sets the service API secret and returns the same instance.
func (c *Config) SetServiceAPISecret(value string) *Config {
	c.ServiceAPISecret = ct.NewOptString(value)
	return c
}

// SetServiceAccessToken sets the service access token and returns the same instance.
func (c *Config) SetServiceAccessToken(value string) *Config {
	c.ServiceAccessToken = ct.NewOptString(value)
	return c
}

// SetAPIVersion sets the API version string and returns the same instance.
func (c *Config) SetAPIVersion(value string) *Config {
	c.APIVersion = ct.NewOptString(value)
	return c
}
