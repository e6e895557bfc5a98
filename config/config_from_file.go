package config

import (
	"fmt"
	"os"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"gopkg.in/ini.v1"
)

// Keys recognized in a configuration file. The keys usually live outside of any section.
const (
	FileKeyBaseURL               = "base_url"
	FileKeyServiceOwnerAPIKey    = "service_owner.api_key"
	FileKeyServiceOwnerAPISecret = "service_owner.api_secret"
	FileKeyServiceAPIKey         = "service.api_key"
	FileKeyServiceAPISecret      = "service.api_secret"
	FileKeyServiceAccessToken    = "service.access_token"
	FileKeyAPIVersion            = "api_version"
)

// ConfigParseError is returned when a configuration file is missing, unreadable, or cannot be parsed
// into key/value pairs.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to read configuration file %q: %s", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// LoadConfigFile reads a configuration file into a Config struct.
//
// Keys that are present in the file replace the corresponding fields; other fields are unchanged,
// except that BaseURL is set to DefaultBaseURL if neither the file nor the Config defines it.
func LoadConfigFile(c *Config, path string, loggers ldlog.Loggers) error {
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return &ConfigParseError{Path: path, Err: err}
	}

	// Section headers are not required; keys under a header are read as if they were not in one, and
	// a key that appears more than once takes its last value.
	for _, section := range f.Sections() {
		readFileKey(section, FileKeyBaseURL, &c.BaseURL)
		readFileKey(section, FileKeyServiceOwnerAPIKey, &c.ServiceOwnerAPIKey)
		readFileKey(section, FileKeyServiceOwnerAPISecret, &c.ServiceOwnerAPISecret)
		readFileKey(section, FileKeyServiceAPIKey, &c.ServiceAPIKey)
		readFileKey(section, FileKeyServiceAPISecret, &c.ServiceAPISecret)
		readFileKey(section, FileKeyServiceAccessToken, &c.ServiceAccessToken)
		readFileKey(section, FileKeyAPIVersion, &c.APIVersion)
	}

	if !c.BaseURL.IsDefined() {
		c.BaseURL = ct.NewOptString(DefaultBaseURL)
	}

	loggers.Infof("Loaded Authlete configuration from %s", path)
	return nil
}

func readFileKey(section *ini.Section, name string, target *ct.OptString) {
	if section.HasKey(name) {
		*target = ct.NewOptString(section.Key(name).String())
	}
}

// ConfigurationFilePath returns the file that NewFileConfig reads: the explicit name if it is not
// empty, otherwise the value of AUTHLETE_CONFIGURATION_FILE, otherwise DefaultConfigurationFile.
func ConfigurationFilePath(filename string) string {
	if filename != "" {
		return filename
	}
	if fromEnv := os.Getenv(ConfigurationFileVar); fromEnv != "" {
		return fromEnv
	}
	return DefaultConfigurationFile
}

// NewFileConfig returns a Configuration read from a configuration file; see ConfigurationFilePath for
// how the file is chosen. It fails with a *ConfigParseError if the file cannot be read.
func NewFileConfig(filename string, loggers ldlog.Loggers) (Configuration, error) {
	var c Config
	if err := LoadConfigFile(&c, ConfigurationFilePath(filename), loggers); err != nil {
		return nil, err
	}
	return c, nil
}
