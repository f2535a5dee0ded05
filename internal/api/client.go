package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// TokenSource yields the current bearer token, or "" when no session exists.
// The session holder provides it, so the transport never keeps its own copy.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, token TokenSource, logger *zap.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name: "storefront-api",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	var rt http.RoundTripper = http.DefaultTransport
	rt = &breakerTransport{next: rt, cb: cb}
	rt = &headerTransport{next: rt, token: token}
	rt = otelhttp.NewTransport(rt)

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Transport: rt},
		timeout: timeout,
		logger:  logger,
	}
}

// headerTransport stamps each outgoing request with the bearer token and
// a request ID for correlation with server logs.
type headerTransport struct {
	next  http.RoundTripper
	token TokenSource
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if r.Header.Get("X-Request-ID") == "" {
		r.Header.Set("X-Request-ID", uuid.NewString())
	}
	if tok := t.token(); tok != "" {
		r.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.next.RoundTrip(r)
}

// breakerTransport stops hammering the API once it is clearly down.
// Only transport-level failures count; business rejections come back as
// well-formed responses and leave the breaker closed.
type breakerTransport struct {
	next http.RoundTripper
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.cb.Execute(func() (*http.Response, error) {
		return t.next.RoundTrip(req)
	})
}
