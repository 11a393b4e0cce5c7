package ui

import (
	"context"
	"encoding/json"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/logtail"
	"github.com/five82/roster/internal/roster"
)

// Messages

// playersMsg carries the result of a controller fetch. players is nil when
// the fetch failed.
type playersMsg struct {
	players []roster.Player
}

// playerMsg carries a detail fetch. player is nil when the fetch failed.
type playerMsg struct {
	id     roster.PlayerID
	player *roster.Player
}

type createdMsg struct {
	body json.RawMessage
}

// removedMsg reports a delete. ok means the request completed and the UI
// must reload.
type removedMsg struct {
	id roster.PlayerID
	ok bool
}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func refreshCmd(ctx context.Context, api *roster.API) tea.Cmd {
	return func() tea.Msg {
		return playersMsg{players: api.ListAll(ctx)}
	}
}

func detailCmd(ctx context.Context, api *roster.API, id roster.PlayerID) tea.Cmd {
	return func() tea.Msg {
		return playerMsg{id: id, player: api.GetOne(ctx, id)}
	}
}

func createCmd(ctx context.Context, api *roster.API, fields roster.Fields) tea.Cmd {
	return func() tea.Msg {
		return createdMsg{body: api.Create(ctx, fields)}
	}
}

func removeCmd(ctx context.Context, api *roster.API, id roster.PlayerID) tea.Cmd {
	return func() tea.Msg {
		return removedMsg{id: id, ok: api.Remove(ctx, id)}
	}
}

func logsCmd(path string, maxLines int) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, maxLines)
		return logLinesMsg{lines: lines, err: err}
	}
}
