package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

func TestNewLoggersSplitsErrorOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	loggers := NewLoggers(&out, &errOut, ldlog.Debug)
	assert.True(t, loggers.IsDebugEnabled())

	loggers.Debug("loading configuration")
	loggers.Error("request failed")

	assert.Contains(t, out.String(), LogPrefix)
	assert.Contains(t, out.String(), "loading configuration")
	assert.NotContains(t, out.String(), "request failed")
	assert.Contains(t, errOut.String(), "request failed")
}

func TestNewLoggersHonorsMinLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	loggers := NewLoggers(&out, &errOut, ldlog.None)
	loggers.Info("hidden")
	loggers.Error("hidden")
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
