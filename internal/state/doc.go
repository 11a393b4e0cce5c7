// Package state provides the mount surface the roster views render into.
//
// # Overview
//
// A Page stands in for a host document with two container elements:
//
//	┌──────────────────────────┐  ┌──────────────────┐
//	│ SlotPlayers              │  │ SlotForm         │
//	│  card #1  (details/del)  │  │  name  [     ]   │
//	│  card #2  (details/del)  │  │  breed [     ]   │
//	│  ... or one detail card  │  │  status[     ]   │
//	└──────────────────────────┘  └──────────────────┘
//
// Renderers never patch an element. They Clear a container and Append the
// freshly built elements, so each render cycle replaces what the previous
// one mounted. The only targeted mutation is Remove, used when the detail
// card is closed.
//
// # Elements
//
// An Element is a kind (card, detail, form) plus the player it was built
// from. Views turn elements into styled text; tests inspect them directly,
// which is the reason the surface holds data rather than rendered strings.
//
// # Concurrency Model
//
// The Page uses a readers-writer lock:
//
//   - Clear, Append, Remove: write lock
//   - Snapshot: read lock, returns cloned slices
//
// In the TUI all mutations happen on the Bubble Tea update goroutine, so the
// lock is uncontended; it exists so that snapshots handed to View and to
// tests never alias the live containers.
//
// # Generation
//
// Every mutation bumps Snapshot.Generation, which tells a caller whether a
// render cycle touched the page between two snapshots.
//
// The zero Page is ready to use.
package state
