package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lofibeats/spotlink/internal/shared"
	"golang.org/x/oauth2"
)

const (
	defaultAccountsURL = "https://accounts.spotify.com"
	defaultAPIURL      = "https://api.spotify.com/v1"

	// expiryMargin is shaved off the server-declared token lifetime to guard
	// against clock skew and requests already in flight when the token lapses.
	expiryMargin = 10 * time.Second
)

// Client talks to the Spotify Web API. One Client owns one bearer session and
// one HTTP session; the token is lazily obtained on first use and refreshed
// when it expires.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *log.Logger

	accountsURL string
	apiURL      string

	mu    sync.Mutex
	token *oauth2.Token
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the HTTP session all requests go through. Use this to
// share a connection pool or install transport-level throttling.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBaseURLs overrides the accounts and API endpoints. Intended for tests.
func WithBaseURLs(accounts, api string) Option {
	return func(c *Client) {
		c.accountsURL = strings.TrimSuffix(accounts, "/")
		c.apiURL = strings.TrimSuffix(api, "/")
	}
}

// New creates a Client for the given Spotify application credentials.
func New(clientID, clientSecret string, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client_id", shared.ErrMissingCredentials)
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("%w: client_secret", shared.ErrMissingCredentials)
	}

	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{},
		logger:       shared.NewLogger(nil),
		accountsURL:  defaultAccountsURL,
		apiURL:       defaultAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close releases the client's HTTP session. The client must not be used after.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// grantHeader builds the Basic authorization header for the token grant.
func (c *Client) grantHeader() string {
	creds := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	return "Basic " + creds
}

// bearerToken returns a valid access token, performing the client credentials
// grant when none is cached or the cached one has expired. The mutex makes
// concurrent callers join a single refresh instead of each issuing a grant.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && time.Now().Before(c.token.Expiry) {
		return c.token.AccessToken, nil
	}

	tok, err := c.requestToken(ctx)
	if err != nil {
		return "", err
	}

	c.token = tok
	c.logger.Debug("obtained bearer token", "expiry", tok.Expiry)
	return tok.AccessToken, nil
}

func (c *Client) requestToken(ctx context.Context) (*oauth2.Token, error) {
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL+"/api/token", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Authorization", c.grantHeader())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRequestError(resp)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: token response: %v", shared.ErrMalformedPayload, err)
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response missing access_token", shared.ErrMalformedPayload)
	}

	return &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - expiryMargin),
	}, nil
}

// getJSON performs an authenticated GET and decodes the response body into dst.
func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newRequestError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrMalformedPayload, err)
	}

	return nil
}
