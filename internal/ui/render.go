package ui

import (
	"log"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
)

// mountList replaces the players container with one card per player, in the
// order given. A nil list means the fetch failed; the container is left empty
// and the failure is logged.
func mountList(page *state.Page, players []roster.Player, logger *log.Logger) {
	page.Clear(state.SlotPlayers)
	if players == nil {
		logger.Print("Uh oh, trouble rendering players! no player list to render")
		return
	}
	cards := make([]state.Element, 0, len(players))
	for _, p := range players {
		cards = append(cards, state.Element{Kind: state.KindCard, Player: p})
	}
	page.Append(state.SlotPlayers, cards...)
}

// mountDetail clears both containers and mounts the expanded card.
func mountDetail(page *state.Page, player roster.Player) {
	page.Clear(state.SlotPlayers)
	page.Clear(state.SlotForm)
	page.Append(state.SlotPlayers, state.Element{Kind: state.KindDetail, Player: player})
}

// mountForm replaces the form container with a fresh create form.
func mountForm(page *state.Page) {
	page.Clear(state.SlotForm)
	page.Append(state.SlotForm, state.Element{Kind: state.KindForm})
}

// unmountDetail removes the expanded card, if one is mounted.
func unmountDetail(page *state.Page) bool {
	return page.Remove(state.SlotPlayers, state.KindDetail)
}

// unmountAll empties both containers.
func unmountAll(page *state.Page) {
	page.Clear(state.SlotPlayers)
	page.Clear(state.SlotForm)
}
