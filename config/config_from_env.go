package config

import (
	"os"
	"strings"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// LoadConfigFromEnvironment sets fields of a Config from the AUTHLETE_* environment variables named in
// the Config struct tags.
//
// A variable that is unset or empty leaves the corresponding field unchanged, so the Config can be
// pre-populated with values that the environment should only override.
func LoadConfigFromEnvironment(c *Config, loggers ldlog.Loggers) error {
	return loadConfigFromReader(c, ct.NewVarReaderFromValues(nonEmptyEnvironment()), loggers)
}

// nonEmptyEnvironment returns the environment without variables whose value is empty, so that an
// empty variable is read the same way as an unset one.
func nonEmptyEnvironment() map[string]string {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && value != "" {
			values[name] = value
		}
	}
	return values
}

func loadConfigFromReader(c *Config, reader *ct.VarReader, loggers ldlog.Loggers) error {
	reader.ReadStruct(c, false)

	if !reader.Result().OK() {
		return reader.Result().GetError()
	}

	loggers.Debugf("Loaded Authlete configuration from environment: %s", c)
	return nil
}

// NewEnvConfig returns a Configuration read from the environment variables. It does not fail: a
// missing variable produces an undefined value.
func NewEnvConfig(loggers ldlog.Loggers) Configuration {
	var c Config
	// every field is a plain string, so the reader has nothing to reject
	_ = LoadConfigFromEnvironment(&c, loggers)
	return c
}
