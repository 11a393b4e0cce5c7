// Package roster applies the roster's failure policy on top of the Puppy
// Bowl client: every failure is logged and swallowed, and callers get
// nil data instead of an error.
package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/five82/roster/internal/puppybowl"
)

// Player is re-exported so callers above this layer need only one import.
type Player = puppybowl.Player

// PlayerID is the opaque, server-assigned player identifier.
type PlayerID = puppybowl.PlayerID

// Fields holds the values collected by the create form.
type Fields = puppybowl.NewPlayer

// API is the roster's view of the players service.
type API struct {
	service puppybowl.PlayerService
	logger  *log.Logger
}

// New wraps service. A nil logger uses the standard logger.
func New(service puppybowl.PlayerService, logger *log.Logger) *API {
	if logger == nil {
		logger = log.Default()
	}
	return &API{service: service, logger: logger}
}

// ListAll returns every player, or nil when the fetch fails.
func (a *API) ListAll(ctx context.Context) []Player {
	if a == nil || a.service == nil {
		return nil
	}
	players, err := a.service.FetchPlayers(ctx)
	if err != nil {
		a.logger.Printf("Uh oh, trouble fetching players! %v", err)
		return nil
	}
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = Sanitize(p)
	}
	return out
}

// GetOne returns the player with the given id, or nil when the fetch fails.
func (a *API) GetOne(ctx context.Context, id PlayerID) *Player {
	if a == nil || a.service == nil {
		return nil
	}
	player, err := a.service.FetchPlayer(ctx, id)
	if err != nil {
		a.logger.Printf("Oh no, trouble fetching player #%s! %v", id, err)
		return nil
	}
	clean := Sanitize(*player)
	return &clean
}

// Create posts a new player and returns the server's response verbatim.
func (a *API) Create(ctx context.Context, fields Fields) json.RawMessage {
	if a == nil || a.service == nil {
		return nil
	}
	raw, err := a.service.AddPlayer(ctx, fields)
	if err != nil {
		a.logger.Printf("Oops, something went wrong with adding that player! %v", err)
		return nil
	}
	a.logger.Printf("created player: %s", compact(raw))
	return raw
}

// Remove deletes a player. It reports whether the request completed, in
// which case the caller reloads everything.
func (a *API) Remove(ctx context.Context, id PlayerID) bool {
	if a == nil || a.service == nil {
		return false
	}
	if _, err := a.service.RemovePlayer(ctx, id); err != nil {
		a.logger.Printf("Whoops, trouble removing player #%s from the roster! %v", id, err)
		return false
	}
	return true
}

var strict = bluemonday.StrictPolicy()

// Sanitize strips markup from the text fields of p. Player data is written
// by anyone in the cohort, so names like "<b>Rex</b>" are common.
func Sanitize(p Player) Player {
	p.Name = stripMarkup(p.Name)
	p.Breed = stripMarkup(p.Breed)
	p.Status = stripMarkup(p.Status)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	return p
}

func stripMarkup(s string) string {
	// StrictPolicy escapes what it keeps; undo that for terminal output.
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// maxLoggedBody caps how much of a response body reaches the log.
const maxLoggedBody = 2048

func compact(raw json.RawMessage) string {
	var b bytes.Buffer
	out := string(raw)
	if err := json.Compact(&b, raw); err == nil {
		out = b.String()
	}
	if len(out) <= maxLoggedBody {
		return out
	}
	cut := maxLoggedBody
	for cut > 0 && !utf8.RuneStart(out[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (%d bytes)", out[:cut], len(out))
}
