// package formatter renders resolved track lists to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
)

// ToCSV converts tracks to CSV with columns: ID, Name, Artists, Album, Duration (ms), ISRC, URI
func ToCSV(tracks []*spotify.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Artists", "Album", "Duration", "ISRC", "URI"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.ID,
			track.Name,
			strings.Join(track.Artists, "; "),
			track.Album,
			strconv.Itoa(track.Duration),
			track.ISRC,
			track.URI,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown converts tracks to a Markdown track listing under the given title
func ToMarkdown(title string, tracks []*spotify.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range tracks {
		duration := shared.FormatDuration(track.Duration)
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, artistLine(track), track.Name, albumPart, duration))
	}

	return buf.Bytes(), nil
}

// ToText converts tracks to a plain text listing
func ToText(title string, tracks []*spotify.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(tracks)))

	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, artistLine(track), track.Name))
	}

	return buf.Bytes(), nil
}

// ToJSON converts tracks to their raw payloads as JSON
func ToJSON(tracks []*spotify.Track, pretty bool) ([]byte, error) {
	payloads := make([]map[string]any, 0, len(tracks))
	for _, track := range tracks {
		payloads = append(payloads, track.Raw)
	}

	if pretty {
		return json.MarshalIndent(payloads, "", "  ")
	}
	return json.Marshal(payloads)
}

// Render dispatches on format: one of json, csv, markdown, text.
func Render(format, title string, tracks []*spotify.Track, pretty bool) ([]byte, error) {
	switch format {
	case "json":
		return ToJSON(tracks, pretty)
	case "csv":
		return ToCSV(tracks)
	case "markdown", "md":
		return ToMarkdown(title, tracks)
	case "text", "txt":
		return ToText(title, tracks)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// WriteFile renders tracks in the given format and writes them to path.
func WriteFile(path, format, title string, tracks []*spotify.Track, pretty bool) error {
	data, err := Render(format, title, tracks, pretty)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

func artistLine(track *spotify.Track) string {
	if len(track.Artists) == 0 {
		return "Unknown Artist"
	}
	return track.Artists[0]
}
