package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/roster/internal/roster"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#719cd6"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#738091")).Width(8)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#738091"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#39506d"))
)

// writePlayers prints players as a table in the order given.
func writePlayers(w io.Writer, players []roster.Player) error {
	if len(players) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No players on the roster"))
		return err
	}

	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{p.ID.String(), dash(p.Name), dash(p.Breed), dash(p.Status), dash(p.ImageURL)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("ID", "NAME", "BREED", "STATUS", "IMAGE").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// writePlayer prints one player's expanded card.
func writePlayer(w io.Writer, p roster.Player) error {
	var b strings.Builder
	b.WriteString(nameStyle.Render(dash(p.Name)))
	b.WriteString(mutedStyle.Render(" #" + p.ID.String()))
	b.WriteString("\n")
	for _, row := range [][2]string{
		{"Image", p.ImageURL},
		{"Breed", p.Breed},
		{"Status", p.Status},
	} {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(dash(row[1]))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
