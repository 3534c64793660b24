package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lofibeats/spotlink/internal/shared"
	"github.com/lofibeats/spotlink/internal/spotify"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoadingView ViewState = iota
	TrackListView
	TrackDetailView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	client   *spotify.Client
	query    string
	typ      spotify.SearchType
	limit    int
	width    int
	height   int
	tracks   []*spotify.Track
	list     list.Model
	selected *spotify.Track
	err      error
	help     help.Model
	keys     keyMap
}

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	back  key.Binding
	quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.quit},
	}
}

type tracksLoadedMsg struct {
	tracks []*spotify.Track
	err    error
}

// NewModel creates a TUI model that browses the album or playlist named by query.
func NewModel(ctx context.Context, client *spotify.Client, query string, typ spotify.SearchType, limit int) *Model {
	return &Model{
		ctx:    ctx,
		view:   LoadingView,
		client: client,
		query:  query,
		typ:    typ,
		limit:  limit,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init kicks off the track fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetchTracks()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.list.Width() != 0 {
			m.list.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TrackListView:
			return m.handleTrackListKeys(msg)
		case TrackDetailView:
			return m.handleDetailKeys(msg)
		default:
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		}

	case tracksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tracks = msg.tracks
		items := make([]list.Item, len(msg.tracks))
		for i, track := range msg.tracks {
			items[i] = trackItem{track: track}
		}
		m.list = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.list.Title = fmt.Sprintf("%d tracks", len(msg.tracks))
		m.list.SetSize(m.width-4, m.height-8)
		m.view = TrackListView
		return m, nil
	}

	if m.view == TrackListView {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LoadingView:
		return styles.title.Render("Resolving tracks…")
	case TrackListView:
		return m.renderTrackList()
	case TrackDetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if selected := m.list.SelectedItem(); selected != nil {
			if item, ok := selected.(trackItem); ok {
				m.selected = item.track
				m.view = TrackDetailView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = TrackListView
		return m, nil
	}
	return m, nil
}

func (m *Model) fetchTracks() tea.Cmd {
	return func() tea.Msg {
		it, err := m.client.Iterate(m.query, m.typ, m.limit)
		if err != nil {
			return tracksLoadedMsg{err: err}
		}
		tracks, err := it.Collect(m.ctx)
		return tracksLoadedMsg{tracks: tracks, err: err}
	}
}

func (m *Model) renderTrackList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.list.View(), helpView)
}

func (m *Model) renderDetail() string {
	t := m.selected
	if t == nil {
		return styles.err.Render("No track selected")
	}

	title := styles.title.Render(t.Name)
	info := fmt.Sprintf(
		"\nArtists: %s\nAlbum: %s\nDuration: %s\nISRC: %s\nURI: %s\nID: %s\n",
		strings.Join(t.Artists, ", "),
		t.Album,
		shared.FormatDuration(t.Duration),
		t.ISRC,
		t.URI,
		t.ID,
	)

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}
