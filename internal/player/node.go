package player

import (
	"net/http"
	"sync"

	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
)

// Node binds a Spotify client to a shared HTTP session. Players resolve
// through the client of whichever node they are attached to.
type Node struct {
	id      string
	spotify *spotify.Client
	session *http.Client

	mu   sync.Mutex
	open bool
}

// NewNode creates an open node around the given client and HTTP session.
func NewNode(client *spotify.Client, session *http.Client) *Node {
	if session == nil {
		session = &http.Client{}
	}
	return &Node{
		id:      shared.GenerateID(),
		spotify: client,
		session: session,
		open:    true,
	}
}

// ID returns the node's identity.
func (n *Node) ID() string { return n.id }

// Spotify returns the Spotify client bound to this node, or nil.
func (n *Node) Spotify() *spotify.Client { return n.spotify }

// Session returns the node's shared HTTP session.
func (n *Node) Session() *http.Client { return n.session }

// Open reports whether the node is usable.
func (n *Node) Open() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.open
}

// Close marks the node unusable and releases its HTTP session.
func (n *Node) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.open {
		return
	}
	n.open = false
	n.session.CloseIdleConnections()
	if n.spotify != nil {
		n.spotify.Close()
	}
}

// Pool is a registry of nodes. It supplies a default node when a caller does
// not bind one explicitly.
type Pool struct {
	mu    sync.Mutex
	nodes []*Node
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add registers a node with the pool.
func (p *Pool) Add(n *Node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nodes = append(p.nodes, n)
}

// ConnectedNode returns the first open node, or [shared.ErrNoNodes] when the
// pool has none.
func (p *Pool) ConnectedNode() (*Node, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, n := range p.nodes {
		if n.Open() {
			return n, nil
		}
	}
	return nil, shared.ErrNoNodes
}

// Remove drops a node from the pool by ID.
func (p *Pool) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.nodes {
		if n.id == id {
			p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
			return
		}
	}
}
