package player

import (
	"context"

	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
)

// Player is one playback session: an autoplay flag, a seed window of recently
// played track IDs, a continuation queue, and the node it resolves through.
// A Player is driven by a single consumer; fulfillment calls for the same
// player must not run concurrently.
type Player struct {
	id       string
	node     *Node
	autoplay bool
	seeds    *spotify.SeedWindow
	queue    *Queue
}

var _ spotify.Session = (*Player)(nil)

// NewPlayer creates a session attached to the given node.
func NewPlayer(node *Node) *Player {
	return &Player{
		id:    shared.GenerateID(),
		node:  node,
		seeds: &spotify.SeedWindow{},
		queue: NewQueue(),
	}
}

// ID returns the session's identity.
func (p *Player) ID() string { return p.id }

// Node returns the node the session is attached to.
func (p *Player) Node() *Node { return p.node }

// Autoplay reports whether the session auto-populates its continuation queue.
func (p *Player) Autoplay() bool { return p.autoplay }

// SetAutoplay toggles autoplay for the session.
func (p *Player) SetAutoplay(on bool) { p.autoplay = on }

// Seeds returns the session's seed window.
func (p *Player) Seeds() *spotify.SeedWindow { return p.seeds }

// Queue returns the session's continuation queue.
func (p *Player) Queue() spotify.ContinuationQueue { return p.queue }

// AutoQueue returns the concrete continuation queue for consumers that need
// to dequeue from it.
func (p *Player) AutoQueue() *Queue { return p.queue }

// Client returns the Spotify client of the session's current node, or nil.
func (p *Player) Client() *spotify.Client {
	if p.node == nil {
		return nil
	}
	return p.node.Spotify()
}

// SearchFunc adapts a function to the [spotify.Searcher] interface.
type SearchFunc func(ctx context.Context, query string) ([]spotify.Playable, error)

// Search calls the wrapped function.
func (f SearchFunc) Search(ctx context.Context, query string) ([]spotify.Playable, error) {
	return f(ctx, query)
}

var _ spotify.Searcher = (SearchFunc)(nil)
