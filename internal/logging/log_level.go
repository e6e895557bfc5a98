package logging

import (
	"fmt"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// ParseLogLevel returns the level with the given name, ignoring case. An empty name means ldlog.Info.
func ParseLogLevel(levelName string) (ldlog.LogLevel, error) {
	if levelName == "" {
		return ldlog.Info, nil
	}
	for _, level := range []ldlog.LogLevel{ldlog.Debug, ldlog.Info, ldlog.Warn, ldlog.Error, ldlog.None} {
		if strings.EqualFold(level.Name(), levelName) {
			return level, nil
		}
	}
	return ldlog.Info, fmt.Errorf("%q is not a valid log level", levelName)
}
