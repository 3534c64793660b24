package player

import (
	"sync"
	"testing"

	"github.com/lofibeats/spotlink/internal/spotify"
	testutil "github.com/lofibeats/spotlink/internal/testing"
)

func mustTrack(t *testing.T, id, name string) *spotify.Track {
	t.Helper()
	track, err := spotify.NewTrack(testutil.TrackPayload(id, name))
	if err != nil {
		t.Fatalf("failed to build track: %v", err)
	}
	return track
}

func TestQueue(t *testing.T) {
	t.Run("pops in insertion order", func(t *testing.T) {
		q := NewQueue()
		q.Put(mustTrack(t, "a", "First"))
		q.Put(mustTrack(t, "b", "Second"))

		first, ok := q.Next()
		if !ok || first.ID != "a" {
			t.Errorf("expected track a first, got %v", first)
		}
		second, ok := q.Next()
		if !ok || second.ID != "b" {
			t.Errorf("expected track b second, got %v", second)
		}
		if _, ok := q.Next(); ok {
			t.Error("expected an empty queue")
		}
	})

	t.Run("Len tracks waiting items", func(t *testing.T) {
		q := NewQueue()
		if q.Len() != 0 {
			t.Errorf("expected empty queue, got %d", q.Len())
		}
		q.Put(mustTrack(t, "a", "First"))
		q.Put(mustTrack(t, "b", "Second"))
		if q.Len() != 2 {
			t.Errorf("expected 2 waiting, got %d", q.Len())
		}
		q.Next()
		if q.Len() != 1 {
			t.Errorf("expected 1 waiting, got %d", q.Len())
		}
	})

	t.Run("membership is by ID", func(t *testing.T) {
		q := NewQueue()
		q.Put(mustTrack(t, "a", "Original"))

		if !q.Contains(mustTrack(t, "a", "Remaster")) {
			t.Error("expected Contains to match by ID")
		}
		if q.Contains(mustTrack(t, "b", "Original")) {
			t.Error("expected Contains to miss a different ID")
		}
	})

	t.Run("consumed tracks move to the history", func(t *testing.T) {
		q := NewQueue()
		track := mustTrack(t, "a", "First")
		q.Put(track)

		if q.HistoryContains(track) {
			t.Error("expected no history before consumption")
		}
		q.Next()
		if q.Contains(track) {
			t.Error("expected the track to leave the queue")
		}
		if !q.HistoryContains(track) {
			t.Error("expected the track in the history")
		}
	})

	t.Run("concurrent producers and consumers", func(t *testing.T) {
		q := NewQueue()
		track := mustTrack(t, "shared", "Shared")

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				q.Put(track)
			}()
			go func() {
				defer wg.Done()
				q.Next()
			}()
		}
		wg.Wait()

		if q.Len() < 0 || q.Len() > 10 {
			t.Errorf("unexpected queue length %d", q.Len())
		}
	})
}
