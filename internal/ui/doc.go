// Package ui provides the Bubble Tea interface for roster.
//
// # Layout
//
// The screen has a header, a command bar and two panes side by side:
//
//   - Players: the list of player cards, or one expanded detail card
//   - New Player: the create form (name, breed, status)
//
// An optional log pane (L) below them tails the roster log, which is the
// only place request failures are reported.
//
// # Rendering
//
// Renderers never draw directly. mountList, mountDetail and mountForm clear
// a container of the shared state.Page and append fresh elements into it;
// View then draws whatever snapshot the page holds. Nothing is patched in
// place, every transition rebuilds the affected container.
//
// # Controller Cycle
//
// Init and every mutation run the same cycle: fetch all players, mount the
// list, mount a new form. Specifically:
//
//   - details (enter/d) fetches one player and mounts the detail card
//   - close (esc/c) unmounts the detail card and runs the cycle
//   - submit (enter on Status, or ctrl+s) creates a player and runs the cycle
//   - delete (x) removes a player and, once the request completes, reloads
//     the whole model from its Options
//
// Requests are tea.Cmds and are never cancelled or sequenced. Whichever
// response arrives last decides what the players pane shows.
package ui
