package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewThrottledClient(t *testing.T) {
	t.Run("zero values yield a plain client", func(t *testing.T) {
		client := NewThrottledClient(0, 0)
		if client.Transport != nil {
			t.Error("expected no custom transport")
		}
		if client.Timeout != 0 {
			t.Error("expected no timeout")
		}
	})

	t.Run("timeout is applied", func(t *testing.T) {
		client := NewThrottledClient(0, 30*time.Second)
		if client.Timeout != 30*time.Second {
			t.Errorf("unexpected timeout %v", client.Timeout)
		}
	})

	t.Run("throttled requests go through", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		client := NewThrottledClient(1000, 0)
		if client.Transport == nil {
			t.Fatal("expected a throttling transport")
		}

		for i := 0; i < 3; i++ {
			resp, err := client.Get(server.URL)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			resp.Body.Close()
		}
		if requests != 3 {
			t.Errorf("expected 3 requests, got %d", requests)
		}
	})

	t.Run("canceled context stops a waiting request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		// Burst of one at a very low rate; the second request would wait minutes.
		client := NewThrottledClient(0.001, 0)
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("expected the first request to pass, got %v", err)
		}
		resp.Body.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		if _, err := client.Do(req); err == nil {
			t.Error("expected a canceled request to fail")
		}
	})
}

func TestTransportConfigClient(t *testing.T) {
	tc := TransportConfig{RateLimit: 5, TimeoutSeconds: 30}
	client := tc.Client()
	if client.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout %v", client.Timeout)
	}
	if client.Transport == nil {
		t.Error("expected a throttling transport")
	}
}
