package state

import (
	"sync"

	"github.com/five82/roster/internal/puppybowl"
)

// Slot names one of the two containers the renderers mount into.
type Slot int

const (
	// SlotPlayers holds the list cards or the single detail card.
	SlotPlayers Slot = iota
	// SlotForm holds the create form.
	SlotForm
)

// Kind identifies what an Element renders as.
type Kind int

const (
	KindCard Kind = iota
	KindDetail
	KindForm
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindDetail:
		return "detail"
	case KindForm:
		return "form"
	default:
		return "unknown"
	}
}

// Element is one mounted fragment. Cards and details carry the player they
// were rendered from; the form carries none.
type Element struct {
	Kind   Kind
	Player puppybowl.Player
}

// ID returns the player id the element is tagged with.
func (e Element) ID() puppybowl.PlayerID {
	return e.Player.ID
}

// Snapshot is a copy of both containers at a point in time.
type Snapshot struct {
	Players []Element
	Form    []Element
	// Generation increments on every mutation so views can tell a rebuilt
	// container from an unchanged one.
	Generation uint64
}

// Detail returns the mounted detail element, if any.
func (s Snapshot) Detail() (Element, bool) {
	for _, el := range s.Players {
		if el.Kind == KindDetail {
			return el, true
		}
	}
	return Element{}, false
}

// Cards returns the mounted list cards in mount order.
func (s Snapshot) Cards() []Element {
	var cards []Element
	for _, el := range s.Players {
		if el.Kind == KindCard {
			cards = append(cards, el)
		}
	}
	return cards
}

// HasForm reports whether the create form is mounted.
func (s Snapshot) HasForm() bool {
	for _, el := range s.Form {
		if el.Kind == KindForm {
			return true
		}
	}
	return false
}

// Page is the mutable surface the renderers write to. It plays the part of
// a document with two container elements. Every render clears a container
// and appends into it; nothing is patched in place.
type Page struct {
	mu         sync.RWMutex
	players    []Element
	form       []Element
	generation uint64
}

// Clear empties a container.
func (p *Page) Clear(slot Slot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	*p.container(slot) = nil
	p.generation++
}

// Append adds elements to the end of a container.
func (p *Page) Append(slot Slot, elems ...Element) {
	if len(elems) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.container(slot)
	*c = append(*c, elems...)
	p.generation++
}

// Remove drops every element of the given kind from a container and reports
// whether anything was removed.
func (p *Page) Remove(slot Slot, kind Kind) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.container(slot)
	kept := (*c)[:0]
	removed := false
	for _, el := range *c {
		if el.Kind == kind {
			removed = true
			continue
		}
		kept = append(kept, el)
	}
	*c = kept
	if removed {
		p.generation++
	}
	return removed
}

// Snapshot returns a copy of both containers.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Snapshot{
		Players:    cloneElements(p.players),
		Form:       cloneElements(p.form),
		Generation: p.generation,
	}
}

// container must be called with mu held.
func (p *Page) container(slot Slot) *[]Element {
	if slot == SlotForm {
		return &p.form
	}
	return &p.players
}

func cloneElements(elems []Element) []Element {
	if len(elems) == 0 {
		return nil
	}
	dup := make([]Element, len(elems))
	copy(dup, elems)
	return dup
}
