package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/studentsearch/internal/debounce"
	"github.com/five82/studentsearch/internal/form"
	"github.com/five82/studentsearch/internal/logging"
	"github.com/five82/studentsearch/internal/prefs"
	"github.com/five82/studentsearch/internal/roster"
	"github.com/five82/studentsearch/internal/search"
	"github.com/five82/studentsearch/internal/student"
)

// focusArea identifies the widget that receives key presses.
type focusArea int

const (
	focusSearch focusArea = iota
	focusFilter
	focusName
	focusRoll
	focusFormBranch
	focusList
	focusCount // sentinel
)

// Options configures the UI.
type Options struct {
	Context         context.Context
	Store           *roster.Store
	Form            *form.Controller
	Logger          *zap.Logger
	Debounce        time.Duration
	DebounceOptions []debounce.Option
	ThemeName       string
	PrefsPath       string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *roster.Store
	form      *form.Controller
	logger    *zap.Logger
	prefsPath string
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    focusArea
	showHelp bool
	modal    Modal

	// Search state: query follows every keystroke, settledQuery only
	// changes once the debouncer fires.
	searchInput  textinput.Model
	query        string
	settledQuery string
	queries      *querySource
	branchFilter search.BranchFilter

	// Add form
	addForm addFormState

	// Results
	list    viewport.Model
	results resultCache
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = roster.New(student.Seed()...)
	}

	controller := opts.Form
	if controller == nil {
		controller = form.New(store)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:          ctx,
		store:        store,
		form:         controller,
		logger:       logging.OrNop(opts.Logger),
		prefsPath:    prefsPath,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(themeName),
		searchInput:  newSearchInput(),
		queries:      newQuerySource(opts.Debounce, opts.DebounceOptions...),
		branchFilter: search.All,
		addForm:      newAddFormState(controller.Defaults()),
	}
	m.setFocus(focusSearch)
	m.refreshResults()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.queries.waitForSettled(m.ctx),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initList()
		}
		m.ready = true
		m.syncList()
		return m, nil

	case querySettledMsg:
		return m.handleQuerySettled(msg)
	}

	// Cursor blink and other input plumbing.
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case focusName:
		m.addForm.name, cmd = m.addForm.name.Update(msg)
	case focusRoll:
		m.addForm.roll, cmd = m.addForm.roll.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	// A modal swallows every key until it closes.
	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.syncList()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		m.setBranchFilter(m.branchFilter.Next())
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.FocusSearch):
		m.setFocus(focusSearch)
		return m, nil

	case key.Matches(msg, m.keys.FocusAddForm):
		m.setFocus(focusName)
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m, m.updateSearchInput(msg)

	case focusFilter:
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.setBranchFilter(m.branchFilter.Prev())
		case key.Matches(msg, m.keys.Next):
			m.setBranchFilter(m.branchFilter.Next())
		case msg.String() == "?":
			m.showHelp = true
		}
		return m, nil

	case focusName, focusRoll:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitForm()
		}
		return m, m.updateFormInput(msg)

	case focusFormBranch:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submitForm()
		case key.Matches(msg, m.keys.Prev):
			m.addForm.branch = m.addForm.branch.Prev()
		case key.Matches(msg, m.keys.Next):
			m.addForm.branch = m.addForm.branch.Next()
		case msg.String() == "?":
			m.showHelp = true
		}
		return m, nil

	case focusList:
		return m.handleListKey(msg)
	}

	return m, nil
}

// handleListKey scrolls the results viewport.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.list.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.list.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.list.HalfViewDown()
	case key.Matches(msg, m.keys.Top):
		m.list.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.list.GotoBottom()
	case msg.String() == "?":
		m.showHelp = true
	}
	return m, nil
}

// setFocus moves keyboard focus, blurring every text field but the target.
func (m *Model) setFocus(area focusArea) {
	m.focus = area
	m.searchInput.Blur()
	m.addForm.name.Blur()
	m.addForm.roll.Blur()
	switch area {
	case focusSearch:
		m.searchInput.Focus()
	case focusName:
		m.addForm.name.Focus()
	case focusRoll:
		m.addForm.roll.Focus()
	}
}

// setBranchFilter applies a branch filter immediately; only the text query
// is debounced. The filter lasts for this session only.
func (m *Model) setBranchFilter(f search.BranchFilter) {
	if f == m.branchFilter {
		return
	}
	m.branchFilter = f
	m.refreshResults()
}

// savePrefs persists the theme. Failures only cost the preference, so they
// are logged and otherwise ignored.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// quit stops the debouncer before the program exits so no timer fires
// against a torn-down UI.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.queries.stop()
	return m, tea.Quit
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchRow())
	b.WriteString("\n")
	b.WriteString(m.renderFormRow())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderCountLine())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	opts.Context = ctx

	m := New(opts)
	defer m.queries.stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	// Cancellation (SIGINT/SIGTERM) is a normal way to leave.
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
