package spotify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lofibeats/spotlink/internal/shared"
)

// SeedWindowSize caps how many recently played track IDs seed a
// recommendations request.
const SeedWindowSize = 5

// SeedWindow is a bounded FIFO of track IDs, newest last. Pushing into a full
// window evicts the oldest entry. A session owns exactly one window; it is not
// safe for concurrent mutation.
type SeedWindow struct {
	ids []string
}

// Push appends a track ID, evicting the oldest when the window is full.
func (w *SeedWindow) Push(id string) {
	if len(w.ids) == SeedWindowSize {
		w.ids = w.ids[1:]
	}
	w.ids = append(w.ids, id)
}

// IDs returns the window's contents, oldest first.
func (w *SeedWindow) IDs() []string {
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

// Len returns how many IDs the window currently holds.
func (w *SeedWindow) Len() int {
	return len(w.ids)
}

// Playable is a track in the host playback library, resolved from its own
// sources rather than from Spotify.
type Playable interface {
	Title() string
}

// Searcher loads playable tracks from the host playback library.
type Searcher interface {
	// Search returns tracks matching query. A query that matches nothing
	// yields [shared.ErrNoTracks] (or an empty slice).
	Search(ctx context.Context, query string) ([]Playable, error)
}

// ContinuationQueue is a playback session's autoplay queue: the buffer of
// what plays next, with a consumption history.
type ContinuationQueue interface {
	Put(*Track)
	Contains(*Track) bool
	HistoryContains(*Track) bool
}

// Session is the playback-session state the recommendation seeder reads and
// mutates. Fulfillment calls for one session must be serialized by the caller.
type Session interface {
	Autoplay() bool
	Seeds() *SeedWindow
	Queue() ContinuationQueue
	// Client returns the Spotify client bound to the session's current node,
	// or nil when the node has none.
	Client() *Client
}

// Fulfill resolves a concrete playable track for t through the host library's
// searcher: first by quoted ISRC, then by "{name} - {firstArtist}" when the
// ISRC search finds nothing. The first hit is returned.
//
// When populate is true and the session has autoplay enabled, fulfillment also
// pushes t's ID into the session's seed window, fetches recommendations seeded
// by the window, and enqueues every recommended track onto the session's
// continuation queue. Tracks already queued or already played are still
// enqueued; the membership check only surfaces them in the debug log.
func (t *Track) Fulfill(ctx context.Context, session Session, searcher Searcher, populate bool) (Playable, error) {
	tracks, err := searcher.Search(ctx, fmt.Sprintf("%q", t.ISRC))
	if errors.Is(err, shared.ErrNoTracks) || (err == nil && len(tracks) == 0) {
		tracks, err = searcher.Search(ctx, fmt.Sprintf("%s - %s", t.Name, t.firstArtist()))
	}
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, shared.ErrNoTracks
	}

	if !session.Autoplay() || !populate {
		return tracks[0], nil
	}

	client := session.Client()
	if client == nil {
		return nil, fmt.Errorf("%w: session node has no spotify client", shared.ErrInvalidArgument)
	}

	session.Seeds().Push(t.ID)

	recommendations, err := client.Recommendations(ctx, session.Seeds().IDs())
	if err != nil {
		return nil, err
	}

	queue := session.Queue()
	for _, reco := range recommendations {
		if queue.Contains(reco) || queue.HistoryContains(reco) {
			client.logger.Debug("recommendation already queued or played", "id", reco.ID, "name", reco.Name)
		}
		queue.Put(reco)
	}

	return tracks[0], nil
}

func (t *Track) firstArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}

// Recommendations fetches recommended tracks for up to five seed track IDs.
func (c *Client) Recommendations(ctx context.Context, seedIDs []string) ([]*Track, error) {
	if len(seedIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one seed track is required", shared.ErrInvalidArgument)
	}

	url := c.apiURL + "/recommendations?seed_tracks=" + strings.Join(seedIDs, ",")
	c.logger.Debug("fetching recommendations", "seeds", len(seedIDs))

	var data map[string]any
	if err := c.getJSON(ctx, url, &data); err != nil {
		return nil, err
	}

	items, err := listField(data, "tracks")
	if err != nil {
		return nil, err
	}

	tracks := make([]*Track, 0, len(items))
	for _, item := range items {
		payload, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: recommendation is not an object", shared.ErrMalformedPayload)
		}
		track, err := NewTrack(payload)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}
