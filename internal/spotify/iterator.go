package spotify

import (
	"context"
	"fmt"

	"github.com/lofibeats/spotlink/internal/shared"
)

// TrackIterator streams the tracks of an album or playlist in page order.
//
// The first call to Next fetches every page into an internal buffer; later
// calls construct and yield one track at a time. The iterator is single-pass
// and not restartable; build a new one to iterate again. Stopping early is
// the only cancellation: simply stop calling Next.
type TrackIterator struct {
	client *Client
	query  string
	typ    SearchType
	limit  int

	first bool
	count int
	queue []map[string]any

	track *Track
	err   error
}

// Iterate returns an iterator over the tracks of the album or playlist named
// by query (a Spotify URL or bare ID). limit <= 0 yields every track. Any
// search type other than album or playlist is a usage error.
func (c *Client) Iterate(query string, typ SearchType, limit int) (*TrackIterator, error) {
	if typ != SearchTypeAlbum && typ != SearchTypePlaylist {
		return nil, fmt.Errorf("%w: iterator search type must be album or playlist, got %s",
			shared.ErrInvalidArgument, typ)
	}

	return &TrackIterator{
		client: c,
		query:  query,
		typ:    typ,
		limit:  limit,
		first:  true,
	}, nil
}

// Next advances the iterator. It reports false once the limit is reached, the
// buffer is exhausted, or an error occurred; check Err after the loop.
func (it *TrackIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}

	if it.first {
		items, err := it.client.searchRaw(ctx, it.query, it.typ)
		if err != nil {
			it.err = err
			return false
		}
		it.queue = items
		it.first = false
	}

	for {
		if it.limit > 0 && it.count == it.limit {
			return false
		}
		if len(it.queue) == 0 {
			return false
		}

		payload := it.queue[0]
		it.queue = it.queue[1:]

		// Null slots (region-unavailable tracks) are skipped and do not count
		// toward the limit.
		if payload == nil {
			continue
		}

		track, err := NewTrack(payload)
		if err != nil {
			it.err = err
			return false
		}

		it.track = track
		it.count++
		return true
	}
}

// Track returns the track produced by the last successful call to Next.
func (it *TrackIterator) Track() *Track {
	return it.track
}

// Err returns the first error the iterator hit, if any.
func (it *TrackIterator) Err() error {
	return it.err
}

// Collect drains the iterator into a slice.
func (it *TrackIterator) Collect(ctx context.Context) ([]*Track, error) {
	var tracks []*Track
	for it.Next(ctx) {
		tracks = append(tracks, it.Track())
	}
	return tracks, it.Err()
}
