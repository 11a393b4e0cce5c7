package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/roster"
)

const (
	fieldName = iota
	fieldBreed
	fieldStatus
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Breed", "Status"}

// createForm is the create-player form. A new one is built on every
// controller cycle, so no input state survives a refresh.
type createForm struct {
	inputs   [fieldCount]textinput.Model
	focusIdx int
}

func newCreateForm() createForm {
	placeholders := [fieldCount]string{"Banjo", "Lab", "field"}

	var f createForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		ti.Width = 30
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	return f
}

// fields returns the values exactly as typed.
func (f createForm) fields() roster.Fields {
	return roster.Fields{
		Name:   f.inputs[fieldName].Value(),
		Breed:  f.inputs[fieldBreed].Value(),
		Status: f.inputs[fieldStatus].Value(),
	}
}

func (f *createForm) focus(idx int) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focusIdx = (idx + fieldCount) % fieldCount
	return f.inputs[f.focusIdx].Focus()
}

func (f *createForm) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *createForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = max(width, 8)
	}
}

func (f createForm) onLastField() bool {
	return f.focusIdx == fieldCount-1
}

// handleFormKey handles keyboard input while the form pane has focus.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.form.blur()
		m.focus = panePlayers
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.Confirm):
		if m.form.onLastField() {
			return m, m.submit()
		}
		return m, m.form.focus(m.form.focusIdx + 1)

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.focus(m.form.focusIdx + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.focus(m.form.focusIdx - 1)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focusIdx], cmd = m.form.inputs[m.form.focusIdx].Update(msg)
	return m, cmd
}

// submit collects the form and posts it. The controller re-runs when the
// create finishes, whatever its outcome.
func (m Model) submit() tea.Cmd {
	return createCmd(m.ctx, m.api, m.form.fields())
}

// renderForm draws the form pane content.
func (m Model) renderForm(width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	if !m.snapshot.HasForm() {
		return bg.Render("Close the details to add a player", styles.MutedText)
	}

	focused := m.focus == paneForm
	labelWidth := 8

	var b strings.Builder
	for i, input := range m.form.inputs {
		label := fieldLabels[i]
		labelStyle := styles.MutedText
		if focused && i == m.form.focusIdx {
			labelStyle = styles.AccentText
		}
		b.WriteString(bg.Render(label, labelStyle))
		b.WriteString(bg.Spaces(labelWidth - len(label)))
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(bgColor)).Render(input.View()))
		b.WriteString("\n\n")
	}

	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Render("Submit")
	if !focused {
		button = bg.Render("[ Submit ]", styles.FaintText)
	}
	b.WriteString(bg.Spaces(labelWidth))
	b.WriteString(button)

	if width >= formMinWidth {
		b.WriteString("\n\n")
		b.WriteString(bg.Render("enter on Status or ctrl+s submits", styles.FaintText))
	}
	return b.String()
}
