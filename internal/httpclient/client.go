// Package httpclient builds the shared outbound HTTP session. All three
// upstream calls go through one client so they share a connection pool,
// a retry policy and a User-Agent.
package httpclient

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"wetter-cli/internal/config"
)

// Session wraps the shared client. Close releases pooled connections
// once the run is over, including on early termination paths.
type Session struct {
	Client *http.Client

	transport *http.Transport
}

// New builds the session from transport tuning. Retries are restricted
// to GET-style transient failures; see checkRetry.
func New(cfg config.HTTPConfig, logger *slog.Logger) *Session {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.CheckRetry = checkRetry
	retryClient.Logger = logger.With("component", "httpclient")
	retryClient.HTTPClient = &http.Client{
		// Per-attempt budget; the dialer above bounds connection setup.
		Timeout:   cfg.ReadTimeout,
		Transport: transport,
	}

	client := retryClient.StandardClient()
	client.Transport = &userAgentTransport{
		base:      client.Transport,
		userAgent: cfg.UserAgent,
	}

	return &Session{Client: client, transport: transport}
}

func (s *Session) Close() {
	s.transport.CloseIdleConnections()
}

// retryStatuses are the transient upstream responses worth another
// attempt. Everything else fails fast.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err != nil || resp == nil {
		// The default policy knows which transport errors are permanent
		// (certificate problems, too many redirects).
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp.Request != nil && resp.Request.Method != http.MethodGet {
		return false, nil
	}
	return retryStatuses[resp.StatusCode], nil
}

// userAgentTransport stamps the session User-Agent on every request.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
