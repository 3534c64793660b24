// Package spotify resolves Spotify identifiers (URLs or raw IDs for tracks,
// albums and playlists) into playable track metadata.
//
// # Client
//
// [Client] authenticates with the client credentials grant and caches the
// resulting bearer token until it expires. One Client owns one HTTP session;
// inject a shared [net/http.Client] with [WithHTTPClient] and release it with
// [Client.Close].
//
// # Resolution
//
// [Client.Search] classifies its query: a Spotify URL resolves by its decoded
// entity type and ID, anything else is treated as a bare entity ID of the
// caller-supplied type. The three response shapes (track, album, playlist)
// all normalize into [Track] values.
//
// [Client.Iterate] streams large albums and playlists through a
// [TrackIterator], following continuation cursors and constructing tracks
// lazily on the consumption side.
//
// # Autoplay
//
// [Track.Fulfill] resolves a Spotify track into the host playback library's
// own [Playable] (by ISRC, falling back to a name/artist query) and, with
// autoplay enabled, feeds recommendation results into the session's
// continuation queue. The collaborator surface the seeder needs ([Session],
// [ContinuationQueue], [Searcher]) is defined here; the player package
// provides implementations.
//
// # Error Handling
//
//   - [*RequestError] : any non-2xx response, carrying status and reason
//   - [shared.ErrMalformedPayload] : unexpected payload shapes, never
//     downgraded to empty results
//   - [shared.ErrNoTracks] : a search matched nothing; the seeder treats this
//     as the cue for its fallback query
//   - [shared.ErrInvalidArgument] : misuse caught before any network call
//
// Nothing in this package retries: transport-level resilience belongs to the
// injected HTTP client.
package spotify
