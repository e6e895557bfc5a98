package logging

import (
	"net/http"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// RequestLoggerTransport decorates a RoundTripper with debug-level logging of every outbound request.
// If debug logging is disabled the original RoundTripper is returned.
func RequestLoggerTransport(loggers ldlog.Loggers, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if !loggers.IsDebugEnabled() {
		return next
	}
	return &loggingRoundTripper{loggers: loggers, next: next}
}

type loggingRoundTripper struct {
	loggers ldlog.Loggers
	next    http.RoundTripper
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	started := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		t.loggers.Debugf("Request: method=%s url=%s auth=%s error=%q elapsed=%dms",
			req.Method,
			req.URL,
			MaskAuthorization(req.Header.Get("Authorization")),
			err,
			elapsed,
		)
		return resp, err
	}
	t.loggers.Debugf("Request: method=%s url=%s auth=%s status=%d elapsed=%dms",
		req.Method,
		req.URL,
		MaskAuthorization(req.Header.Get("Authorization")),
		resp.StatusCode,
		elapsed,
	)
	return resp, nil
}

// RequestLoggerMiddleware decorates a Handler with debug-level logging of all requests.
func RequestLoggerMiddleware(loggers ldlog.Loggers) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			wrappedWriter := loggingHTTPResponseWriter{writer: w}
			next.ServeHTTP(&wrappedWriter, req)
			loggers.Debugf("Request: method=%s url=%s auth=%s status=%d bytes=%d",
				req.Method,
				req.URL,
				MaskAuthorization(req.Header.Get("Authorization")),
				wrappedWriter.statusCode,
				wrappedWriter.bytesWritten,
			)
		})
	}
}

// MaskAuthorization reduces an Authorization header value to its last five characters, or "n/a" if
// it is empty.
func MaskAuthorization(authHeader string) string {
	if authHeader == "" {
		return "n/a"
	}
	if len(authHeader) > 5 {
		return "*" + authHeader[len(authHeader)-5:]
	}
	return authHeader
}

type loggingHTTPResponseWriter struct {
	writer       http.ResponseWriter
	statusCode   int
	bytesWritten uint64
}

func (w *loggingHTTPResponseWriter) Header() http.Header {
	return w.writer.Header()
}

func (w *loggingHTTPResponseWriter) Write(data []byte) (int, error) {
	if w.statusCode == 0 {
		w.WriteHeader(http.StatusOK)
	}
	w.bytesWritten += uint64(len(data))
	return w.writer.Write(data)
}

func (w *loggingHTTPResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.writer.WriteHeader(statusCode)
}
