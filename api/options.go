package api

import (
	"net/http"

	"github.com/authlete/authlete-go/config"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

type options struct {
	loggers    ldlog.Loggers
	httpClient *http.Client
	httpConfig config.HTTPConfig
}

// Option customizes a Client.
type Option func(*options)

// WithLoggers sets the loggers used by the client. The default is ldlog.NewDisabledLoggers().
func WithLoggers(loggers ldlog.Loggers) Option {
	return func(o *options) {
		o.loggers = loggers
	}
}

// WithHTTPClient makes the client use an existing http.Client instead of building one from the
// HTTPConfig.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithHTTPConfig sets proxy, timeout and response cache options.
func WithHTTPConfig(httpConfig config.HTTPConfig) Option {
	return func(o *options) {
		o.httpConfig = httpConfig
	}
}
