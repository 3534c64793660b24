package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/lofibeats/spotlink/internal/player"
	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
	testutil "github.com/lofibeats/spotlink/internal/testing"
	"github.com/urfave/cli/v3"
)

func testRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	runner := NewRunner(RunnerOpts{
		Logger: shared.NewLogger(io.Discard),
		Output: &buf,
	})
	return runner, &buf
}

func testApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "spotlink",
		Commands: r.register(),
	}
}

func TestNewRunner(t *testing.T) {
	t.Run("applies provided options", func(t *testing.T) {
		config := shared.DefaultConfig()
		pool := player.NewPool()
		logger := shared.NewLogger(io.Discard)
		var buf bytes.Buffer

		runner := NewRunner(RunnerOpts{Config: config, Pool: pool, Logger: logger, Output: &buf})
		if runner.config != config {
			t.Error("expected the provided config")
		}
		if runner.pool != pool {
			t.Error("expected the provided pool")
		}
		if runner.logger != logger {
			t.Error("expected the provided logger")
		}
		if runner.output != &buf {
			t.Error("expected the provided output")
		}
	})

	t.Run("fills defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		if runner.config == nil {
			t.Error("expected a default config")
		}
		if runner.pool == nil {
			t.Error("expected a default pool")
		}
		if runner.logger == nil {
			t.Error("expected a default logger")
		}
		if runner.output != os.Stdout {
			t.Error("expected stdout output")
		}
	})

	t.Run("registers every command", func(t *testing.T) {
		runner, _ := testRunner(t)
		commands := runner.register()
		if len(commands) != 6 {
			t.Fatalf("expected 6 commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"init", "decode", "resolve", "tracks", "recommend", "browse"} {
			if !names[want] {
				t.Errorf("expected command %q to be registered", want)
			}
		}
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		runner, buf := testRunner(t)
		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := buf.String(); got != "{\"key\":\"value\"}\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		runner, buf := testRunner(t)
		if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"key\"") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("write failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{
			Logger: shared.NewLogger(io.Discard),
			Output: &testutil.FWriter{},
		})
		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
			t.Error("expected a write error")
		}
	})
}

func TestParseSearchType(t *testing.T) {
	cases := map[string]spotify.SearchType{
		"track":    spotify.SearchTypeTrack,
		"album":    spotify.SearchTypeAlbum,
		"playlist": spotify.SearchTypePlaylist,
	}
	for value, want := range cases {
		typ, err := parseSearchType(value)
		if err != nil {
			t.Errorf("expected no error for %q, got %v", value, err)
		}
		if typ != want {
			t.Errorf("expected %s for %q, got %s", want, value, typ)
		}
	}

	if _, err := parseSearchType("artist"); !errors.Is(err, shared.ErrInvalidFlag) {
		t.Errorf("expected ErrInvalidFlag, got %v", err)
	}
}

func TestDecodeCommand(t *testing.T) {
	t.Run("track URL", func(t *testing.T) {
		runner, buf := testRunner(t)
		app := testApp(runner)

		err := app.Run(context.Background(), []string{
			"spotlink", "decode", "--pretty=false",
			"https://open.spotify.com/track/6BDLcvvtyJD2vnXRDi1IjQ?si=abc123",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var out map[string]string
		if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("expected JSON output, got %q", buf.String())
		}
		if out["type"] != "track" || out["id"] != "6BDLcvvtyJD2vnXRDi1IjQ" {
			t.Errorf("unexpected decode result %v", out)
		}
	})

	t.Run("non-link", func(t *testing.T) {
		runner, _ := testRunner(t)
		app := testApp(runner)

		err := app.Run(context.Background(), []string{"spotlink", "decode", "not a link"})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		runner, _ := testRunner(t)
		app := testApp(runner)

		err := app.Run(context.Background(), []string{"spotlink", "decode"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestResolveCommand(t *testing.T) {
	t.Run("without nodes", func(t *testing.T) {
		runner, _ := testRunner(t)
		app := testApp(runner)

		err := app.Run(context.Background(), []string{"spotlink", "resolve", "4PTG3Z6ehGkBFwjybzWkR8"})
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("renders a resolved track", func(t *testing.T) {
		transport := testutil.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.URL.Path == "/api/token" {
				return testutil.JSONResponse(t, http.StatusOK, map[string]any{
					"access_token": "test_bearer",
					"expires_in":   3600,
				}), nil
			}
			payload := testutil.TrackPayload("4PTG3Z6ehGkBFwjybzWkR8", "Never Gonna Give You Up")
			payload["type"] = "track"
			return testutil.JSONResponse(t, http.StatusOK, payload), nil
		})
		session := &http.Client{Transport: transport}

		client, err := spotify.New("id", "secret", spotify.WithHTTPClient(session))
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}
		pool := player.NewPool()
		pool.Add(player.NewNode(client, session))

		var buf bytes.Buffer
		runner := NewRunner(RunnerOpts{
			Pool:   pool,
			Logger: shared.NewLogger(io.Discard),
			Output: &buf,
		})
		app := testApp(runner)

		err = app.Run(context.Background(), []string{"spotlink", "resolve", "--format", "text", "4PTG3Z6ehGkBFwjybzWkR8"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "Never Gonna Give You Up") {
			t.Errorf("expected the resolved track in the output, got %q", buf.String())
		}
	})

	t.Run("transport failure surfaces", func(t *testing.T) {
		session := &http.Client{
			Transport: testutil.NewMockRoundTripper(nil, errors.New("connection refused")),
		}
		client, err := spotify.New("id", "secret", spotify.WithHTTPClient(session))
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}
		pool := player.NewPool()
		pool.Add(player.NewNode(client, session))

		runner := NewRunner(RunnerOpts{
			Pool:   pool,
			Logger: shared.NewLogger(io.Discard),
			Output: &bytes.Buffer{},
		})
		app := testApp(runner)

		err = app.Run(context.Background(), []string{"spotlink", "resolve", "4PTG3Z6ehGkBFwjybzWkR8"})
		if err == nil {
			t.Error("expected a transport error")
		}
	})
}

func TestRecommendCommandFlagValidation(t *testing.T) {
	t.Run("no seeds", func(t *testing.T) {
		runner, _ := testRunner(t)
		app := testApp(runner)

		err := app.Run(context.Background(), []string{"spotlink", "recommend"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("too many seeds", func(t *testing.T) {
		runner, _ := testRunner(t)
		app := testApp(runner)

		args := []string{"spotlink", "recommend"}
		for _, seed := range []string{"s1", "s2", "s3", "s4", "s5", "s6"} {
			args = append(args, "--seed", seed)
		}

		err := app.Run(context.Background(), args)
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}
