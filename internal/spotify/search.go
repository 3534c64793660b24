package spotify

import (
	"context"
	"fmt"

	"github.com/lofibeats/spotlink/internal/shared"
)

// albumSubset is the fixed set of album fields attached to each album track
// before construction. Deliberately not the whole album payload: the track
// listing and copyright blocks would bloat every Track's raw data.
var albumSubset = []string{
	"album_type",
	"artists",
	"available_markets",
	"external_urls",
	"href",
	"id",
	"images",
	"name",
	"release_date",
	"release_date_precision",
	"total_tracks",
	"type",
	"uri",
}

// Search resolves a query into tracks.
//
// When query decodes as a Spotify URL its entity type overrides typ. A bare
// string is used as a literal entity ID of the given type; the Web API mapping
// here is ID-based, not a free-text search, so "never gonna give you up" will
// not resolve but "4PTG3Z6ehGkBFwjybzWkR8" will.
//
// A track query yields a single-element slice. Album and playlist queries
// yield the constructed tracks of the payload's first page.
func (c *Client) Search(ctx context.Context, query string, typ SearchType) ([]*Track, error) {
	res, err := c.resolve(ctx, query, typ, false)
	if err != nil {
		return nil, err
	}
	return res.tracks, nil
}

// searchRaw is the iterator-mode variant of Search: it defers Track
// construction by returning raw per-track payloads, and for playlists it
// walks every continuation page before returning. Null playlist slots are
// kept as nil entries for the iterator to skip.
func (c *Client) searchRaw(ctx context.Context, query string, typ SearchType) ([]map[string]any, error) {
	res, err := c.resolve(ctx, query, typ, true)
	if err != nil {
		return nil, err
	}
	return res.items, nil
}

// resolved is the outcome of one resolve call: exactly one of the two fields
// is populated, selected by the iterator flag.
type resolved struct {
	tracks []*Track
	items  []map[string]any
}

func (c *Client) resolve(ctx context.Context, query string, typ SearchType, iterator bool) (resolved, error) {
	entity, identifier := typ, query
	if decoded, ok := DecodeURL(query); ok {
		entity, identifier = decoded.Type, decoded.ID
	}
	if entity == SearchTypeUnusable {
		return resolved{}, fmt.Errorf("%w: unusable spotify URL %q", shared.ErrInvalidArgument, query)
	}

	url := fmt.Sprintf("%s/%ss/%s", c.apiURL, entity, identifier)
	c.logger.Debug("resolving entity", "type", entity.String(), "id", identifier)

	var data map[string]any
	if err := c.getJSON(ctx, url, &data); err != nil {
		return resolved{}, err
	}

	declared, err := stringField(data, "type")
	if err != nil {
		return resolved{}, err
	}

	switch declared {
	case "track":
		track, err := NewTrack(data)
		if err != nil {
			return resolved{}, err
		}
		return resolved{tracks: []*Track{track}}, nil

	case "album":
		return c.resolveAlbum(data, iterator)

	case "playlist":
		return c.resolvePlaylist(ctx, data, iterator)

	default:
		return resolved{}, fmt.Errorf("%w: unexpected entity type %q", shared.ErrMalformedPayload, declared)
	}
}

// resolveAlbum attaches the album subset to each item, since album track
// payloads carry no album object of their own.
func (c *Client) resolveAlbum(data map[string]any, iterator bool) (resolved, error) {
	album := make(map[string]any, len(albumSubset))
	for _, key := range albumSubset {
		v, ok := data[key]
		if !ok {
			return resolved{}, fmt.Errorf("%w: album missing %q", shared.ErrMalformedPayload, key)
		}
		album[key] = v
	}

	paging, err := mapField(data, "tracks")
	if err != nil {
		return resolved{}, err
	}
	items, err := listField(paging, "items")
	if err != nil {
		return resolved{}, err
	}

	var out resolved
	for _, item := range items {
		payload, ok := item.(map[string]any)
		if !ok {
			return resolved{}, fmt.Errorf("%w: album track is not an object", shared.ErrMalformedPayload)
		}
		payload["album"] = album

		if iterator {
			out.items = append(out.items, payload)
			continue
		}
		track, err := NewTrack(payload)
		if err != nil {
			return resolved{}, err
		}
		out.tracks = append(out.tracks, track)
	}

	return out, nil
}

func (c *Client) resolvePlaylist(ctx context.Context, data map[string]any, iterator bool) (resolved, error) {
	paging, err := mapField(data, "tracks")
	if err != nil {
		return resolved{}, err
	}
	items, err := listField(paging, "items")
	if err != nil {
		return resolved{}, err
	}

	if !iterator {
		// First page only; pagination is the iterator's job.
		var tracks []*Track
		for _, item := range items {
			payload, err := playlistItemTrack(item)
			if err != nil {
				return resolved{}, err
			}
			if payload == nil {
				// Null slot, e.g. a track gone unavailable in the market.
				continue
			}
			track, err := NewTrack(payload)
			if err != nil {
				return resolved{}, err
			}
			tracks = append(tracks, track)
		}
		return resolved{tracks: tracks}, nil
	}

	raw, err := playlistItemTracks(items)
	if err != nil {
		return resolved{}, err
	}

	next, hasNext, err := cursorField(paging)
	if err != nil {
		return resolved{}, err
	}

	// Drain every continuation page eagerly; the iterator layer owns laziness
	// on the consumption side.
	for hasNext {
		c.logger.Debug("fetching playlist page", "cursor", next)

		var page map[string]any
		if err := c.getJSON(ctx, next, &page); err != nil {
			return resolved{}, err
		}

		pageItems, err := listField(page, "items")
		if err != nil {
			return resolved{}, err
		}
		pageTracks, err := playlistItemTracks(pageItems)
		if err != nil {
			return resolved{}, err
		}
		raw = append(raw, pageTracks...)

		next, hasNext, err = cursorField(page)
		if err != nil {
			return resolved{}, err
		}
	}

	return resolved{items: raw}, nil
}

// playlistItemTrack unwraps one playlist item to its inner track payload.
// A null track slot comes back as (nil, nil).
func playlistItemTrack(item any) (map[string]any, error) {
	wrapper, ok := item.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: playlist item is not an object", shared.ErrMalformedPayload)
	}
	v, ok := wrapper["track"]
	if !ok {
		return nil, fmt.Errorf("%w: playlist item missing \"track\"", shared.ErrMalformedPayload)
	}
	if v == nil {
		return nil, nil
	}
	payload, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: playlist track is not an object", shared.ErrMalformedPayload)
	}
	return payload, nil
}

func playlistItemTracks(items []any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload, err := playlistItemTrack(item)
		if err != nil {
			return nil, err
		}
		out = append(out, payload)
	}
	return out, nil
}

// cursorField reads the continuation cursor of a paging object. A JSON null
// (or empty string) cursor means the final page.
func cursorField(paging map[string]any) (string, bool, error) {
	v, ok := paging["next"]
	if !ok {
		return "", false, fmt.Errorf("%w: paging object missing \"next\"", shared.ErrMalformedPayload)
	}
	if v == nil {
		return "", false, nil
	}
	next, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: \"next\" is not a string", shared.ErrMalformedPayload)
	}
	return next, next != "", nil
}
