// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/lofibeats/spotlink/internal/spotify"
)

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// RoundTripFunc adapts a function to [http.RoundTripper].
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds an [*http.Response] carrying body encoded as JSON.
func JSONResponse(t *testing.T, status int, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal response body: %v", err)
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(data)),
	}
}

// TrackPayload builds the minimal raw track payload [spotify.NewTrack] accepts.
func TrackPayload(id, name string) map[string]any {
	return map[string]any{
		"album": map[string]any{
			"name": name + " (album)",
			"images": []any{
				map[string]any{"url": "https://i.scdn.co/image/" + id},
			},
		},
		"artists": []any{
			map[string]any{"name": "Artist of " + name},
		},
		"name":         name,
		"uri":          "spotify:track:" + id,
		"id":           id,
		"duration_ms":  float64(180000),
		"external_ids": map[string]any{"isrc": "USRC1" + id},
	}
}

// MockSearcher is a scripted [spotify.Searcher]: each call pops the next
// result from Results, recording queries in Queries.
type MockSearcher struct {
	Results []SearchResult
	Queries []string
}

// SearchResult is one scripted answer for [MockSearcher].
type SearchResult struct {
	Tracks []spotify.Playable
	Err    error
}

func (m *MockSearcher) Search(ctx context.Context, query string) ([]spotify.Playable, error) {
	m.Queries = append(m.Queries, query)
	if len(m.Results) == 0 {
		return nil, nil
	}
	res := m.Results[0]
	m.Results = m.Results[1:]
	return res.Tracks, res.Err
}

// FakePlayable is a trivial [spotify.Playable].
type FakePlayable struct {
	Name string
}

func (f FakePlayable) Title() string { return f.Name }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, io.ErrClosedPipe
}
