// Package ui implements an interactive terminal track browser using bubbletea's Elm architecture.
//
// The TUI walks a resolved album or playlist:
//  1. [LoadingView] : the iterator drains the entity's pages
//  2. [TrackListView] : browse the resolved tracks
//  3. [TrackDetailView] : full metadata for one track
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
