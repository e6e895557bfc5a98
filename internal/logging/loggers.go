// Package logging builds the SDK's loggers and the debug-level logging of HTTP requests.
package logging

import (
	"io"
	"log"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// LogPrefix starts every line written by loggers from this package.
const LogPrefix = "[Authlete]"

// NewLoggers returns loggers that write Error messages to errOut and everything else at or above
// minLevel to out. Each line carries a timestamp and LogPrefix.
func NewLoggers(out, errOut io.Writer, minLevel ldlog.LogLevel) ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(newLog(out))
	loggers.SetBaseLoggerForLevel(ldlog.Error, newLog(errOut))
	loggers.SetMinLevel(minLevel)
	loggers.SetPrefix(LogPrefix)
	return loggers
}

func newLog(w io.Writer) *log.Logger {
	return log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds)
}
