// Package player implements the playback-session collaborators the spotify
// package resolves against.
//
//   - [Node] : binds a [spotify.Client] to a shared HTTP session
//   - [Pool] : node registry supplying a default connected node
//   - [Player] : one playback session (autoplay flag, seed window,
//     continuation queue), implementing [spotify.Session]
//   - [Queue] : FIFO continuation queue with consumption history,
//     implementing [spotify.ContinuationQueue]
//
// The real media-playback engine is out of scope; [SearchFunc] adapts
// whatever track loading the host provides into a [spotify.Searcher].
package player
