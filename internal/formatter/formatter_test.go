package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
	testutil "github.com/lofibeats/spotlink/internal/testing"
)

func testTracks(t *testing.T) []*spotify.Track {
	t.Helper()
	var tracks []*spotify.Track
	for _, id := range []string{"t1", "t2"} {
		track, err := spotify.NewTrack(testutil.TrackPayload(id, "Song "+id))
		if err != nil {
			t.Fatalf("failed to build track: %v", err)
		}
		tracks = append(tracks, track)
	}
	return tracks
}

func TestToCSV(t *testing.T) {
	data, err := ToCSV(testTracks(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("expected parseable CSV, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d records", len(records))
	}
	if records[0][0] != "ID" || records[0][6] != "URI" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][0] != "t1" || records[1][1] != "Song t1" {
		t.Errorf("unexpected first row %v", records[1])
	}
	if records[1][4] != "180000" {
		t.Errorf("expected raw millisecond duration, got %q", records[1][4])
	}
}

func TestToMarkdown(t *testing.T) {
	data, err := ToMarkdown("My Playlist", testTracks(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "# My Playlist\n") {
		t.Errorf("expected title heading, got %q", out)
	}
	if !strings.Contains(out, "**Tracks**: 2") {
		t.Errorf("expected track count, got %q", out)
	}
	if !strings.Contains(out, "1. Artist of Song t1 - Song t1 (Song t1 (album)) [3:00]") {
		t.Errorf("expected a numbered listing, got %q", out)
	}
}

func TestToText(t *testing.T) {
	data, err := ToText("My Playlist", testTracks(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "Tracks: 2") {
		t.Errorf("expected track count, got %q", out)
	}
	if !strings.Contains(out, "2. Artist of Song t2 - Song t2") {
		t.Errorf("expected a numbered listing, got %q", out)
	}
}

func TestToJSON(t *testing.T) {
	tracks := testTracks(t)

	data, err := ToJSON(tracks, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var payloads []map[string]any
	if err := json.Unmarshal(data, &payloads); err != nil {
		t.Fatalf("expected parseable JSON, got %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(payloads))
	}
	if payloads[0]["id"] != "t1" {
		t.Errorf("expected the raw payload, got %v", payloads[0])
	}

	pretty, err := ToJSON(tracks, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("expected indented output")
	}
}

func TestRender(t *testing.T) {
	tracks := testTracks(t)

	for _, format := range []string{"json", "csv", "markdown", "md", "text", "txt"} {
		t.Run(format, func(t *testing.T) {
			data, err := Render(format, "Title", tracks, false)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(data) == 0 {
				t.Error("expected output")
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := Render("yaml", "Title", tracks, false)
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteFile(path, "csv", "Title", testTracks(t), false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected the file to exist, got %v", err)
	}
	if !strings.HasPrefix(string(data), "ID,Name") {
		t.Errorf("unexpected file contents %q", data)
	}
}
