package spotify

import (
	"fmt"

	"github.com/lofibeats/spotlink/internal/shared"
)

// Track is a single track resolved via the Spotify Web API.
//
// Raw holds the untouched payload the track was built from. Identity is the
// Spotify ID alone; two tracks with the same ID are the same track no matter
// how the rest of their fields differ.
type Track struct {
	Raw      map[string]any
	Album    string
	Images   []string
	Artists  []string
	Name     string
	URI      string
	ID       string
	Duration int    // milliseconds
	ISRC     string // empty when Spotify carries no ISRC for the track
}

// NewTrack builds a Track from a raw API track payload. A payload missing any
// required key is a hard failure wrapping [shared.ErrMalformedPayload], never
// a Track with defaulted fields.
func NewTrack(data map[string]any) (*Track, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil track payload", shared.ErrMalformedPayload)
	}

	album, err := mapField(data, "album")
	if err != nil {
		return nil, err
	}
	albumName, err := stringField(album, "name")
	if err != nil {
		return nil, err
	}
	images, err := listField(album, "images")
	if err != nil {
		return nil, err
	}

	imageURLs := make([]string, 0, len(images))
	for _, img := range images {
		imgMap, ok := img.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: album image is not an object", shared.ErrMalformedPayload)
		}
		u, err := stringField(imgMap, "url")
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, u)
	}

	artists, err := listField(data, "artists")
	if err != nil {
		return nil, err
	}
	artistNames := make([]string, 0, len(artists))
	for _, a := range artists {
		aMap, ok := a.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: artist is not an object", shared.ErrMalformedPayload)
		}
		name, err := stringField(aMap, "name")
		if err != nil {
			return nil, err
		}
		artistNames = append(artistNames, name)
	}

	name, err := stringField(data, "name")
	if err != nil {
		return nil, err
	}
	uri, err := stringField(data, "uri")
	if err != nil {
		return nil, err
	}
	id, err := stringField(data, "id")
	if err != nil {
		return nil, err
	}
	duration, err := intField(data, "duration_ms")
	if err != nil {
		return nil, err
	}

	// external_ids must be present, though the isrc inside it is optional.
	externalIDs, err := mapField(data, "external_ids")
	if err != nil {
		return nil, err
	}
	isrc, _ := externalIDs["isrc"].(string)

	return &Track{
		Raw:      data,
		Album:    albumName,
		Images:   imageURLs,
		Artists:  artistNames,
		Name:     name,
		URI:      uri,
		ID:       id,
		Duration: duration,
		ISRC:     isrc,
	}, nil
}

// Equal reports whether two tracks share the same Spotify ID.
func (t *Track) Equal(other *Track) bool {
	return other != nil && t.ID == other.ID
}

func stringField(data map[string]any, key string) (string, error) {
	v, ok := data[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", shared.ErrMalformedPayload, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", shared.ErrMalformedPayload, key)
	}
	return s, nil
}

func mapField(data map[string]any, key string) (map[string]any, error) {
	v, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", shared.ErrMalformedPayload, key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an object", shared.ErrMalformedPayload, key)
	}
	return m, nil
}

func listField(data map[string]any, key string) ([]any, error) {
	v, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", shared.ErrMalformedPayload, key)
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a list", shared.ErrMalformedPayload, key)
	}
	return l, nil
}

// intField reads a JSON number; encoding/json decodes numbers in an untyped
// document as float64.
func intField(data map[string]any, key string) (int, error) {
	v, ok := data[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", shared.ErrMalformedPayload, key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a number", shared.ErrMalformedPayload, key)
	}
	return int(f), nil
}
