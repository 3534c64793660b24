package spotify

import "regexp"

// SearchType specifies which Spotify entity a query or ID refers to.
type SearchType int

const (
	SearchTypeTrack SearchType = iota
	SearchTypeAlbum
	SearchTypePlaylist
	// SearchTypeUnusable marks a link that matched the Spotify URL pattern but
	// names an entity (such as an artist) that cannot be resolved into tracks.
	// Callers must check for it before resolving.
	SearchTypeUnusable
)

func (st SearchType) String() string {
	switch st {
	case SearchTypeTrack:
		return "track"
	case SearchTypeAlbum:
		return "album"
	case SearchTypePlaylist:
		return "playlist"
	default:
		return "unusable"
	}
}

// urlRegex recognizes open.spotify.com links and spotify: URIs. The share
// suffixes (?si=..., &dl_branch=...) are matched so they never leak into the ID.
var urlRegex = regexp.MustCompile(`^(https?://open.)?(spotify)(.com/|:)` +
	`(album|playlist|track|artist)([/:])` +
	`([a-zA-Z0-9]+)(\?si=[a-zA-Z0-9]+)?(&dl_branch=[0-9]+)?`)

// Identifier is a decoded Spotify link: the entity type and its catalog ID.
type Identifier struct {
	Type SearchType
	ID   string
}

// DecodeURL reports whether input is a Spotify link and, when it is, returns
// its entity type and ID. Artist links decode with [SearchTypeUnusable]; a
// non-nil result therefore does not guarantee the link is resolvable.
func DecodeURL(input string) (Identifier, bool) {
	m := urlRegex.FindStringSubmatch(input)
	if m == nil {
		return Identifier{}, false
	}

	id := m[6]
	switch m[4] {
	case "track":
		return Identifier{Type: SearchTypeTrack, ID: id}, true
	case "album":
		return Identifier{Type: SearchTypeAlbum, ID: id}, true
	case "playlist":
		return Identifier{Type: SearchTypePlaylist, ID: id}, true
	default:
		return Identifier{Type: SearchTypeUnusable, ID: id}, true
	}
}
