// Package authletetest provides a fake Authlete API server for tests of code that uses the api
// package.
package authletetest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/authlete/authlete-go/dto"
	"github.com/authlete/authlete-go/internal/logging"
	"github.com/authlete/authlete-go/web"

	"github.com/gorilla/mux"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	helpers "github.com/launchdarkly/go-test-helpers/v3"
)

const (
	// ResultCodeNotFound is the result code the server sends for requests that match no canned response.
	ResultCodeNotFound = "A000404"
	// ResultCodeTooManyRequests is the result code the server sends when Requests is full.
	ResultCodeTooManyRequests = "A000500"
	// RequestBufferSize is the capacity of Requests.
	RequestBufferSize = 100
)

// Request is a request received by the Server.
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	Body          []byte
}

// Server is an httptest.Server that answers Authlete API paths with canned responses and records
// every request it receives.
type Server struct {
	*httptest.Server
	// Requests receives a copy of every request. Once RequestBufferSize requests are waiting in it,
	// further requests are not recorded and get a 500 response with ResultCodeTooManyRequests.
	Requests <-chan Request

	requestsCh chan Request
	loggers    ldlog.Loggers
	router     *mux.Router
	lock       sync.RWMutex
}

// NewServer starts a Server. Call Close when finished with it.
func NewServer(loggers ldlog.Loggers) *Server {
	ch := make(chan Request, RequestBufferSize)
	s := &Server{Requests: ch, requestsCh: ch, loggers: loggers, router: mux.NewRouter()}
	s.router.NotFoundHandler = http.HandlerFunc(notFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(notFound)
	route := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.lock.RLock()
		defer s.lock.RUnlock()
		s.router.ServeHTTP(w, req)
	})
	s.Server = httptest.NewServer(logging.RequestLoggerMiddleware(loggers)(s.recordRequest(route)))
	return s
}

// WithServer runs fn with a new Server and closes the server afterward.
func WithServer(loggers ldlog.Loggers, fn func(*Server)) {
	s := NewServer(loggers)
	defer s.Close()
	fn(s)
}

// Respond makes the server answer requests for the given method and path with a status and a body.
// If body is a string or []byte it is sent as is; otherwise it is encoded as JSON. Path may contain
// gorilla/mux variables such as "/api/{serviceKey}/auth/token". When several responses match a
// request, the one registered first is used.
func (s *Server) Respond(method web.HTTPMethod, path string, status int, body interface{}) {
	var data []byte
	switch b := body.(type) {
	case nil:
	case string:
		data = []byte(b)
	case []byte:
		data = b
	default:
		var err error
		if data, err = json.Marshal(b); err != nil {
			panic(err)
		}
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.router.Methods(method.String()).Path(path).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(data)
	})
}

// Fail makes the server answer requests for the given method and path with an error status and an
// Authlete result object.
func (s *Server) Fail(method web.HTTPMethod, path string, status int, resultCode, resultMessage string) {
	s.Respond(method, path, status, dto.APIResponse{ResultCode: resultCode, ResultMessage: resultMessage})
}

// ExpectRequest returns the next recorded request, failing the test if none arrives within a second.
func (s *Server) ExpectRequest(t *testing.T) Request {
	return helpers.RequireValue(t, s.Requests, time.Second, "timed out waiting for request to fake Authlete server")
}

// ExpectNoMoreRequests fails the test if any further request has been recorded.
func (s *Server) ExpectNoMoreRequests(t *testing.T) {
	if !helpers.AssertNoMoreValues(t, s.Requests, 50*time.Millisecond, "received unexpected request") {
		t.FailNow()
	}
}

func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
		}
		recorded := Request{
			Method:        req.Method,
			Path:          req.URL.Path,
			Query:         req.URL.Query(),
			Authorization: req.Header.Get("Authorization"),
			Body:          body,
		}
		select {
		case s.requestsCh <- recorded:
		default:
			s.loggers.Errorf("Fake Authlete server dropped %s %s: %d requests have not been read",
				req.Method, req.URL.Path, RequestBufferSize)
			writeResult(w, http.StatusInternalServerError, ResultCodeTooManyRequests,
				"request buffer of the fake Authlete server is full")
			return
		}
		next.ServeHTTP(w, req)
	})
}

func notFound(w http.ResponseWriter, req *http.Request) {
	writeResult(w, http.StatusNotFound, ResultCodeNotFound, "no response configured for "+req.Method+" "+req.URL.Path)
}

func writeResult(w http.ResponseWriter, status int, resultCode, resultMessage string) {
	data, _ := json.Marshal(dto.APIResponse{ResultCode: resultCode, ResultMessage: resultMessage})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
