package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// logState holds the log pane contents.
type logState struct {
	lines []string
	err   error
}

// initLogViewport sizes the log viewport to the bottom box.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-2, 0), logPaneHeight-2)
	m.logViewport.Style = lipgloss.NewStyle()
}

// refreshLogs re-reads the tail of the log file when the pane is visible.
func (m Model) refreshLogs() tea.Cmd {
	if !m.showLogs {
		return nil
	}
	return logsCmd(m.logPath, LogTailLines)
}

// handleLogLines stores a fresh tail and scrolls to the newest line.
func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logState.lines = msg.lines
	m.logState.err = msg.err
	m.updateLogViewport()
}

func (m *Model) updateLogViewport() {
	if m.logViewport.Width == 0 {
		m.initLogViewport()
	}
	m.logViewport.Width = max(m.width-2, 0)
	m.logViewport.Height = logPaneHeight - 2
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SurfaceAlt))
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

// handleLogScroll scrolls the log pane. It reports whether msg was a scroll key.
func (m *Model) handleLogScroll(msg tea.KeyMsg) bool {
	if !m.showLogs {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
	default:
		return false
	}
	return true
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	if m.logState.err != nil {
		return bg.Render("log unavailable: "+m.logState.err.Error(), styles.DangerText)
	}
	if len(m.logState.lines) == 0 {
		return bg.Render("Nothing logged yet", styles.MutedText)
	}

	out := make([]string, 0, len(m.logState.lines))
	for _, line := range m.logState.lines {
		out = append(out, formatLogLine(line, styles, bg))
	}
	return strings.Join(out, "\n")
}

// logTimestampLen is the width of the standard logger's date and time prefix,
// "2006/01/02 15:04:05".
const logTimestampLen = 19

// formatLogLine colors one roster log line: the timestamp is muted, failures
// are red and successful creates are green.
func formatLogLine(line string, styles Styles, bg BgStyle) string {
	ts, rest := splitLogTimestamp(line)

	msgStyle := styles.Text
	switch classifyLogLine(rest) {
	case logLineFailure:
		msgStyle = styles.DangerText
	case logLineCreated:
		msgStyle = styles.SuccessText
	}

	if ts == "" {
		return bg.Render(rest, msgStyle)
	}
	return bg.Render(ts, styles.FaintText) + bg.Space() + bg.Render(rest, msgStyle)
}

func splitLogTimestamp(line string) (string, string) {
	if len(line) <= logTimestampLen || line[logTimestampLen] != ' ' {
		return "", line
	}
	ts := line[:logTimestampLen]
	if ts[4] != '/' || ts[7] != '/' || ts[10] != ' ' || ts[13] != ':' {
		return "", line
	}
	return ts, line[logTimestampLen+1:]
}

type logLineKind int

const (
	logLinePlain logLineKind = iota
	logLineFailure
	logLineCreated
)

var failureMarkers = []string{"trouble", "went wrong"}

func classifyLogLine(msg string) logLineKind {
	lower := strings.ToLower(msg)
	for _, marker := range failureMarkers {
		if strings.Contains(lower, marker) {
			return logLineFailure
		}
	}
	if strings.HasPrefix(lower, "created player") {
		return logLineCreated
	}
	return logLinePlain
}

// renderLogPane draws the log box below the main panes.
func (m Model) renderLogPane() string {
	return m.renderTitledBox("Log · "+truncateMiddle(m.logPath, 60), m.logViewport.View(), m.width, logPaneHeight, false)
}
