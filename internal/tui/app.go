package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/countdown/internal/board"
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// tickMsg is the single shared tick for every timer.
type tickMsg time.Time

type mode int

const (
	modeList mode = iota
	modeForm
)

// Config holds what the view needs from the runtime.
type Config struct {
	Board      *board.Board
	Categories model.CategoryTable
	Policy     board.RemovalPolicy
	Interval   time.Duration
}

// Model is the Bubble Tea model for the countdown view.
type Model struct {
	board      *board.Board
	categories model.CategoryTable
	policy     board.RemovalPolicy
	interval   time.Duration

	keys *KeyMap
	help help.Model

	mode mode
	form *huh.Form
	fb   *formBindings

	timers []model.Timer
	cursor int

	width      int
	height     int
	err        error
	message    string
	messageSty lipgloss.Style
	messageExp time.Time
}

// New creates the view model. It opens on the form when there are no timers.
func New(cfg Config) *Model {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}

	m := &Model{
		board:      cfg.Board,
		categories: cfg.Categories,
		policy:     cfg.Policy,
		interval:   cfg.Interval,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		fb:         &formBindings{},
	}
	m.refresh()
	if len(m.timers) == 0 {
		m.openForm()
	}
	return m
}

// Init starts the tick chain and the form if it is open.
func (m *Model) Init() tea.Cmd {
	if m.mode == modeForm {
		return tea.Batch(m.tickCmd(), m.form.Init())
	}
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(formWidth(msg.Width))
		}
		return m, nil

	case tickMsg:
		m.tick()
		return m, m.tickCmd()

	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.handleFormKey(msg)
		}
		return m.handleKeyPress(msg)
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

// tick advances every timer once and reloads the cards.
func (m *Model) tick() {
	if !m.messageExp.IsZero() && m.board.Now().After(m.messageExp) {
		m.message = ""
		m.messageExp = time.Time{}
	}

	finished, err := m.board.Tick()
	if err != nil {
		m.err = err
		return
	}
	for _, t := range finished {
		m.setMessage(fmt.Sprintf("%q is done", t.Title), StyleSuccess, 5*time.Second)
	}
	m.refresh()
}

// handleKeyPress handles keyboard input on the card list.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.timers)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()

	case key.Matches(msg, m.keys.New):
		m.openForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleFormKey intercepts the keys that leave the form. Everything else
// goes to huh.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeForm()
		return m, nil
	}
	return m.updateForm(msg)
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.submit()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// submit adds the timer described by the form and rebuilds the form empty.
// Incomplete input is ignored. On any other error the typed values are kept
// so the user can correct them.
func (m *Model) submit() tea.Cmd {
	t, err := m.board.Add(m.fb.title, m.fb.category, m.fb.target)
	switch {
	case errors.Is(err, errors.ErrIncompleteInput):
		// nothing to add
	case err != nil:
		m.err = err
		logging.Warn("add failed", logging.KeyError, err)
		m.buildForm()
		return m.form.Init()
	default:
		m.err = nil
		m.setMessage(fmt.Sprintf("Added #%d %s", t.ID, t.Title), StyleSuccess, 3*time.Second)
		m.refresh()
		m.cursor = len(m.timers) - 1
	}

	m.openForm()
	return m.form.Init()
}

// removeSelected removes the timer under the cursor if the gate allows it.
func (m *Model) removeSelected() {
	t, ok := m.Selected()
	if !ok {
		return
	}
	if !board.CanRemove(t, m.policy) {
		m.setMessage("Timer is still running", StyleWarning, 2*time.Second)
		return
	}

	if _, err := m.board.Remove(t.ID); err != nil {
		m.err = err
		return
	}
	m.refresh()
	if m.cursor >= len(m.timers) && m.cursor > 0 {
		m.cursor = len(m.timers) - 1
	}
}

func (m *Model) openForm() {
	m.fb.reset()
	m.buildForm()
}

// buildForm replaces the form, seeding it with the current bindings.
func (m *Model) buildForm() {
	m.form = newTimerForm(m.fb, m.categories, m.board.Now, m.width)
	m.mode = modeForm
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modeList
}

// refresh reloads the card list from the board.
func (m *Model) refresh() {
	timers, err := m.board.Snapshot()
	if err != nil {
		m.err = err
		return
	}
	m.timers = timers
	if m.cursor >= len(m.timers) {
		m.cursor = max(len(m.timers)-1, 0)
	}
}

// Selected returns the timer under the cursor.
func (m *Model) Selected() (model.Timer, bool) {
	if m.cursor < 0 || m.cursor >= len(m.timers) {
		return model.Timer{}, false
	}
	return m.timers[m.cursor], true
}

// Timers returns the cards currently shown.
func (m *Model) Timers() []model.Timer {
	return m.timers
}

// setMessage sets a temporary message.
func (m *Model) setMessage(msg string, style lipgloss.Style, duration time.Duration) {
	m.message = msg
	m.messageSty = style
	m.messageExp = m.board.Now().Add(duration)
}

// tickCmd arms the next tick. Only one is ever outstanding.
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the form and the cards.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render("Error: "+errors.FormatError(m.err)))
	}
	if m.message != "" {
		sections = append(sections, m.messageSty.Render(m.message))
	}

	if m.mode == modeForm && m.form != nil {
		sections = append(sections, m.form.View())
	}

	if len(m.timers) == 0 {
		sections = append(sections, StyleSubtitle.Render("No timers yet."))
	} else {
		for i, t := range m.timers {
			sections = append(sections, m.renderCard(t, m.mode == modeList && i == m.cursor))
		}
	}

	if m.mode == modeForm {
		sections = append(sections, StyleHelp.Render("enter next/submit • esc close form • ctrl+c quit"))
	} else {
		sections = append(sections, StyleHelp.Render(m.help.View(m.keys)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	title := StyleTitle.Render("Countdown")
	now := StyleSubtitle.Render(m.board.Now().Format("Mon Jan 2, 15:04:05"))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", now) + "\n"
}

// renderCard draws one timer: title, category, unit blocks and the remove hint.
func (m *Model) renderCard(t model.Timer, selected bool) string {
	color := CategoryColor(m.categories.Lookup(t.Category))

	heading := StyleCardTitle.Foreground(color).Render(fmt.Sprintf("#%d %s", t.ID, t.Title)) +
		"  " + StyleSubtitle.Render(t.Category)

	var blocks []string
	for _, b := range timer.Blocks(timer.Decompose(t.TimeRemaining)) {
		cell := StyleBlockValue.Render(fmt.Sprintf("%02d", b.Value)) + "\n" + StyleBlockUnit.Render(b.Unit)
		blocks = append(blocks, StyleBlock.Render(cell))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	hint := StyleRemoveDisabled.Render("[x] remove")
	if board.CanRemove(t, m.policy) {
		hint = StyleRemoveEnabled.Render("[x] remove")
	}
	footer := hint
	if !t.IsRunning {
		footer = StyleDone.Render("done") + "  " + hint
	}

	style := StyleCard
	if selected {
		style = StyleCardSelected
	}
	return style.BorderForeground(color).Render(strings.Join([]string{heading, row, footer}, "\n"))
}

// Run starts the view and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
