package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/state"
)

// handlePlayersKey handles keyboard input while the players pane has focus.
func (m Model) handlePlayersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.snapshot.Detail(); ok {
		if key.Matches(msg, m.keys.Close) {
			return m.closeDetail()
		}
		return m, nil
	}

	cards := m.snapshot.Cards()

	switch {
	case key.Matches(msg, m.keys.FocusForm):
		if !m.snapshot.HasForm() {
			return m, nil
		}
		m.focus = paneForm
		return m, m.form.focus(0)

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(cards)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(len(cards)-1, 0)

	case key.Matches(msg, m.keys.Details):
		if card, ok := m.selectedCard(); ok {
			return m, detailCmd(m.ctx, m.api, card.ID())
		}
	case key.Matches(msg, m.keys.Delete):
		if card, ok := m.selectedCard(); ok {
			return m, removeCmd(m.ctx, m.api, card.ID())
		}
	}

	return m, nil
}

// closeDetail removes the expanded card and re-runs the controller, so the
// list comes back freshly fetched.
func (m Model) closeDetail() (tea.Model, tea.Cmd) {
	unmountDetail(m.page)
	m.snapshot = m.page.Snapshot()
	return m, m.refresh()
}

func (m Model) selectedCard() (state.Element, bool) {
	cards := m.snapshot.Cards()
	if m.selected < 0 || m.selected >= len(cards) {
		return state.Element{}, false
	}
	return cards[m.selected], true
}

// playersTitle returns the players pane title.
func (m Model) playersTitle() string {
	if detail, ok := m.snapshot.Detail(); ok {
		return fmt.Sprintf("Player #%s", detail.ID())
	}
	return fmt.Sprintf("Players (%d)", len(m.snapshot.Cards()))
}

// renderPlayers draws the players pane content: the detail card when one is
// mounted, the list of cards otherwise.
func (m Model) renderPlayers(width, height int, bgColor string) string {
	if detail, ok := m.snapshot.Detail(); ok {
		return m.renderDetailCard(detail, width, bgColor)
	}

	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	cards := m.snapshot.Cards()
	if len(cards) == 0 {
		return bg.Render("No players on the roster", styles.MutedText)
	}

	visible := max(height/cardHeight, 1)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(cards))

	lines := make([]string, 0, (end-start)*cardHeight)
	for i := start; i < end; i++ {
		selected := i == m.selected && m.focus == panePlayers
		lines = append(lines, m.formatCard(cards[i], width, bgColor, selected)...)
	}
	return strings.Join(lines, "\n")
}

// formatCard renders one list card as two lines:
//
//	#ID Name                    details · delete
//	    https://image.url/...
func (m Model) formatCard(card state.Element, width int, bgColor string, selected bool) []string {
	lineBg := bgColor
	if selected {
		lineBg = m.theme.SelectionBg
	}
	bg := NewBgStyle(lineBg)

	var idStyle, nameStyle, controlStyle, urlStyle lipgloss.Style
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, nameStyle, controlStyle, urlStyle = sel, sel.Bold(true), sel, sel
	} else {
		styles := m.theme.Styles()
		idStyle = styles.MutedText
		nameStyle = styles.Text.Bold(true)
		controlStyle = styles.FaintText
		urlStyle = styles.FaintText
	}

	idStr := "#" + card.ID().String()
	controls := "details · delete"
	controlsWidth := lipgloss.Width(controls)
	nameWidth := max(width-len(idStr)-controlsWidth-3, 8)

	name := truncate(orDash(card.Player.Name), nameWidth)
	gap := max(width-len(idStr)-1-lipgloss.Width(name)-controlsWidth, 1)

	first := bg.Render(idStr, idStyle) + bg.Space() + bg.Render(name, nameStyle) +
		bg.Spaces(gap) + bg.Render(controls, controlStyle)
	second := bg.Spaces(len(idStr)+1) +
		bg.Render(truncateMiddle(orDash(card.Player.ImageURL), max(width-len(idStr)-1, 8)), urlStyle)

	return []string{bg.FillLine(first, width), bg.FillLine(second, width)}
}

// renderDetailCard draws the expanded card: name, image, breed and status.
func (m Model) renderDetailCard(detail state.Element, width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	p := detail.Player

	labelWidth := 8
	row := func(label, value string) string {
		return bg.Render(label, styles.MutedText) + bg.Spaces(labelWidth-len(label)) + value
	}
	valueWidth := max(width-labelWidth, 8)

	var b strings.Builder
	b.WriteString(bg.Render(truncate(orDash(p.Name), width), styles.Text.Bold(true)))
	b.WriteString("\n\n")
	b.WriteString(row("Image", bg.Render(truncateMiddle(orDash(p.ImageURL), valueWidth), styles.InfoText)))
	b.WriteString("\n")
	b.WriteString(row("Breed", bg.Render(truncate(orDash(p.Breed), valueWidth), styles.Text)))
	b.WriteString("\n")
	b.WriteString(row("Status", styles.StatusBadge(p.Status).Render(truncate(orDash(p.Status), valueWidth))))
	b.WriteString("\n\n")
	b.WriteString(bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Close", styles.MutedText))
	return b.String()
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, topBorder)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	lines = append(lines, bottomBorder)
	return strings.Join(lines, "\n")
}
