package shared

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// throttledTransport delays each outgoing request until the limiter grants a slot.
type throttledTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewThrottledClient returns an [*http.Client] whose requests are rate limited
// to rps requests per second with a burst of one.
//
// rps <= 0 disables throttling and timeout <= 0 disables the request deadline;
// both zero yields a plain client.
func NewThrottledClient(rps float64, timeout time.Duration) *http.Client {
	client := &http.Client{}
	if timeout > 0 {
		client.Timeout = timeout
	}
	if rps > 0 {
		client.Transport = &throttledTransport{
			base:    http.DefaultTransport,
			limiter: rate.NewLimiter(rate.Limit(rps), 1),
		}
	}
	return client
}

// Client builds the shared HTTP session described by a [TransportConfig].
func (tc TransportConfig) Client() *http.Client {
	return NewThrottledClient(tc.RateLimit, time.Duration(tc.TimeoutSeconds)*time.Second)
}
