package player

import (
	"sync"

	"github.com/lofibeats/spotlink/internal/spotify"
)

// Queue is a FIFO of upcoming autoplay tracks. Tracks leave the queue through
// Next and are remembered in its history. Membership is by Spotify ID.
type Queue struct {
	mu      sync.Mutex
	items   []*spotify.Track
	history []*spotify.Track
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Put appends a track to the back of the queue.
func (q *Queue) Put(t *spotify.Track) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, t)
}

// Next pops the front of the queue, recording it in the history. The second
// return value is false when the queue is empty.
func (q *Queue) Next() (*spotify.Track, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	t := q.items[0]
	q.items = q.items[1:]
	q.history = append(q.history, t)
	return t, true
}

// Len returns how many tracks are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Contains reports whether a track with the same ID is waiting in the queue.
func (q *Queue) Contains(t *spotify.Track) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return containsID(q.items, t)
}

// HistoryContains reports whether a track with the same ID has already been
// consumed from the queue.
func (q *Queue) HistoryContains(t *spotify.Track) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return containsID(q.history, t)
}

func containsID(tracks []*spotify.Track, t *spotify.Track) bool {
	for _, existing := range tracks {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}
