package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("roster", styles.Logo)}

	if m.loading {
		parts = append(parts, bg.Render("Fetching players...", styles.WarningText.Bold(true)))
	} else {
		parts = append(parts,
			bg.Render("Players:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.snapshot.Cards())), styles.Text))
	}

	if _, ok := m.snapshot.Detail(); ok {
		parts = append(parts, bg.Render("● Detail", styles.InfoText))
	} else {
		parts = append(parts, bg.Render("● Listing", styles.SuccessText))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if m.collectionURL != "" {
		limit := 60
		if compact {
			limit = 30
		}
		parts = append(parts, bg.Render(truncateMiddle(m.collectionURL, limit), styles.FaintText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// formatTimestamp formats the last load time with a relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastLoaded.IsZero() {
		return ""
	}

	since := time.Since(m.lastLoaded)
	ts := m.lastLoaded.Format("15:04:05")

	switch {
	case since < time.Minute:
		ts += " (now)"
	case since < time.Hour:
		ts += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		ts += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return ts
}

// renderCommandBar renders the key hints for the current pane.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	_, inDetail := m.snapshot.Detail()
	switch {
	case m.focus == paneForm:
		commands = []cmd{
			{"tab", "Next field"},
			{"enter", "Next/Submit"},
			{"ctrl+s", "Submit"},
			{"esc", "Players"},
		}
	case inDetail:
		commands = []cmd{
			{"esc", "Close"},
			{"L", "Logs"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Details"},
			{"x", "Delete"},
			{"tab", "Add"},
			{"r", "Refresh"},
			{"L", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
