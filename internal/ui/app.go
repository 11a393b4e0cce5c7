package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
)

// pane identifies which pane receives keys.
type pane int

const (
	panePlayers pane = iota
	paneForm
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       *roster.API
	Page      *state.Page
	Config    *config.Config
	Logger    *log.Logger
	ThemeName string
	PrefsPath string
	ShowLogs  bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	opts          Options
	ctx           context.Context
	api           *roster.API
	page          *state.Page
	logger        *log.Logger
	prefsPath     string
	logPath       string
	collectionURL string

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    pane
	showHelp bool
	showLogs bool

	// Page state
	snapshot   state.Snapshot
	selected   int
	form       createForm
	loading    bool
	lastLoaded time.Time
	reloads    int

	// Log pane
	logViewport viewport.Model
	logState    logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	page := opts.Page
	if page == nil {
		page = &state.Page{}
		opts.Page = page
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		opts:      opts,
		ctx:       ctx,
		api:       opts.API,
		page:      page,
		logger:    logger,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(opts.ThemeName),
		showLogs:  opts.ShowLogs,
		snapshot:  page.Snapshot(),
		form:      newCreateForm(),
		loading:   true,
	}
	if opts.Config != nil {
		m.logPath = opts.Config.LogPath()
		m.collectionURL = opts.Config.CollectionURL()
	}
	return m
}

// Init implements tea.Model. It runs the first controller cycle.
func (m Model) Init() tea.Cmd {
	return batch(m.refresh(), m.refreshLogs())
}

// refresh starts a controller cycle: fetch every player, then mount the list
// and a fresh form when the result arrives.
func (m Model) refresh() tea.Cmd {
	return refreshCmd(m.ctx, m.api)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case playersMsg:
		mountList(m.page, msg.players, m.logger)
		mountForm(m.page)
		m.form = newCreateForm()
		m.form.setWidth(m.formInputWidth())
		var cmd tea.Cmd
		if m.focus == paneForm {
			cmd = m.form.focus(0)
		}
		m.snapshot = m.page.Snapshot()
		m.selected = min(m.selected, max(len(m.snapshot.Cards())-1, 0))
		m.loading = false
		m.lastLoaded = time.Now()
		return m, batch(cmd, m.refreshLogs())

	case playerMsg:
		// The fetch already logged its failure; the view stays as it was.
		if msg.player == nil {
			return m, m.refreshLogs()
		}
		mountDetail(m.page, *msg.player)
		m.form.blur()
		m.focus = panePlayers
		m.snapshot = m.page.Snapshot()
		return m, m.refreshLogs()

	case createdMsg:
		m.loading = true
		return m, m.refresh()

	case removedMsg:
		if !msg.ok {
			return m, m.refreshLogs()
		}
		return m.reload()

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	return m, nil
}

// reload throws away the model and the mounted page and starts over as if
// the program had just launched. Only the theme, the log pane toggle and the
// window size carry across.
func (m Model) reload() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.ThemeName = m.theme.Name
	opts.ShowLogs = m.showLogs

	unmountAll(m.page)

	fresh := New(opts)
	fresh.reloads = m.reloads + 1
	if m.ready {
		fresh.resize(m.width, m.height)
	}
	return fresh, fresh.Init()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.initLogViewport()
	}
	m.ready = true
	m.help.Width = width
	m.form.setWidth(m.formInputWidth())
	m.updateLogViewport()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The form swallows printable keys, so globals only apply elsewhere.
	if m.focus == paneForm {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		m.savePrefs()
		return m, m.refreshLogs()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.refresh()
	}

	if m.handleLogScroll(msg) {
		return m, nil
	}

	return m.handlePlayersKey(msg)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShowLogs: m.showLogs}); err != nil {
		m.logger.Printf("save prefs: %v", err)
	}
}

// paneWidths splits the screen between the players and form panes.
func (m Model) paneWidths() (int, int) {
	share := 60
	if m.width >= LayoutExtraWideWidth {
		share = 65
	}
	formWidth := max(m.width-m.width*share/100, formMinWidth)
	return max(m.width-formWidth, 0), formWidth
}

func (m Model) formInputWidth() int {
	_, formWidth := m.paneWidths()
	// borders, label column and a little breathing room
	return formWidth - 2 - 8 - 2
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	contentHeight := m.height - chromeHeight
	if m.showLogs {
		contentHeight -= logPaneHeight
	}
	contentHeight = max(contentHeight, 3)

	playersWidth, formWidth := m.paneWidths()

	playersFocused := m.focus == panePlayers
	playersBg := m.theme.SurfaceAlt
	if playersFocused {
		playersBg = m.theme.FocusBg
	}
	playersContent := m.renderPlayers(playersWidth-2, contentHeight-2, playersBg)
	playersPane := m.renderTitledBox(m.playersTitle(), playersContent, playersWidth, contentHeight, playersFocused)

	formFocused := m.focus == paneForm
	formBg := m.theme.SurfaceAlt
	if formFocused {
		formBg = m.theme.FocusBg
	}
	formContent := m.renderForm(formWidth-2, formBg)
	formPane := m.renderTitledBox("New Player", formContent, formWidth, contentHeight, formFocused)

	sections := []string{
		m.renderHeader(),
		m.renderCommandBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, playersPane, formPane),
	}
	if m.showLogs {
		sections = append(sections, m.renderLogPane())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// batch combines commands, skipping nils. A single command is returned as is.
func batch(cmds ...tea.Cmd) tea.Cmd {
	var valid []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	default:
		return tea.Batch(valid...)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}
