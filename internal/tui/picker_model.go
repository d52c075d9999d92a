package tui

import (
	"showdate-cli/internal/calendar"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// WidgetUpdatedMsg is sent after a click changes the selection. Containers
// embedding Model react to it (e.g. marking a form dirty).
type WidgetUpdatedMsg struct{}

type focusTarget int

const (
	focusTrigger focusTarget = iota
	focusGrid
)

func (f focusTarget) String() string {
	if f == focusGrid {
		return "grid"
	}
	return "trigger"
}

type Options struct {
	// Title is shown above the trigger field.
	Title string
	// Placeholder is shown in the trigger when nothing is selected.
	Placeholder string
	// Theme is auto|light|dark; Glyphs is unicode|ascii.
	Theme  string
	Glyphs string
	// QuitOnSelect ends the program after the first selection change.
	QuitOnSelect bool
	AltScreen    bool

	Log *zap.Logger
}

// Model hosts one calendar.Picker behind a trigger field. Closed, it shows
// the display label; open, it shows the month grid with a day cursor.
type Model struct {
	picker *calendar.Picker
	opts   Options
	log    *zap.Logger

	keys keyMap
	help help.Model

	focus  focusTarget
	cursor int
	status string
	width  int

	quitting bool
}

func New(p *calendar.Picker, opts Options) Model {
	if opts.Placeholder == "" {
		opts.Placeholder = "Select a date"
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		picker: p,
		opts:   opts,
		log:    log,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  40,
	}
	if p.IsOpen() {
		m.focus = focusGrid
	}
	m.cursor = m.initialCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Picker exposes the hosted picker state.
func (m Model) Picker() *calendar.Picker { return m.picker }

// Cursor is the highlighted day of the displayed month.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Focus() string { return m.focus.String() }

func (m Model) Quitting() bool { return m.quitting }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case WidgetUpdatedMsg:
		m.status = "selected " + m.picker.DisplayLabel()
		if m.opts.QuitOnSelect {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.picker.IsOpen() {
		if key.Matches(msg, m.keys.Activate) {
			m.open()
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Close):
		m.close()
	case key.Matches(msg, m.keys.Activate):
		return m.click()
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.navigate(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.navigate(1)
	case key.Matches(msg, m.keys.PrevYear):
		m.navigate(-12)
	case key.Matches(msg, m.keys.NextYear):
		m.navigate(12)
	case key.Matches(msg, m.keys.Today):
		m.jumpToday()
	}
	return m, nil
}

func (m *Model) open() {
	m.picker.Open()
	m.focus = focusGrid
	m.cursor = m.initialCursor()
}

// close hides the grid and returns focus to the trigger.
func (m *Model) close() {
	m.picker.Close()
	m.focus = focusTrigger
}

func (m Model) click() (tea.Model, tea.Cmd) {
	if !m.picker.IsSelectable(m.cursor) {
		m.status = "not selectable under policy " + m.picker.Policy().String()
		return m, nil
	}
	changed := m.picker.OnDateClick(m.cursor)
	m.focus = focusTrigger
	if !changed {
		return m, nil
	}
	m.log.Debug("date selected", zap.String("value", m.picker.PersistedValue()))
	return m, func() tea.Msg { return WidgetUpdatedMsg{} }
}

// moveCursor moves by delta days, crossing into the adjacent month when the
// policy allows it.
func (m *Model) moveCursor(delta int) {
	target := m.cursor + delta
	switch {
	case target >= 1 && target <= m.picker.DaysInMonth():
		m.cursor = target
	case target < 1:
		if m.navigateRaw(-1) {
			m.cursor = clamp(target+m.picker.DaysInMonth(), 1, m.picker.DaysInMonth())
		}
	default:
		prev := m.picker.DaysInMonth()
		if m.navigateRaw(1) {
			m.cursor = clamp(target-prev, 1, m.picker.DaysInMonth())
		}
	}
}

func (m *Model) navigate(delta int) {
	if m.navigateRaw(delta) {
		m.cursor = clamp(m.cursor, 1, m.picker.DaysInMonth())
	}
}

func (m *Model) navigateRaw(delta int) bool {
	if m.picker.Navigate(delta) {
		return true
	}
	y, mo := m.picker.Displayed()
	m.log.Debug("navigation refused",
		zap.Int("delta", delta),
		zap.Int("year", y),
		zap.Int("month", int(mo)),
		zap.Stringer("policy", m.picker.Policy()))
	m.status = "out of range for policy " + m.picker.Policy().String()
	return false
}

func (m *Model) jumpToday() {
	today := m.picker.Today()
	if m.navigateRaw(monthsBetween(m.picker, today)) {
		m.cursor = today.Day
	}
}

func (m Model) initialCursor() int {
	y, mo := m.picker.Displayed()
	if sel, ok := m.picker.Selected(); ok && sel.Year == y && sel.Month == mo {
		return sel.Day
	}
	if today := m.picker.Today(); today.Year == y && today.Month == mo {
		return today.Day
	}
	return 1
}

func monthsBetween(p *calendar.Picker, d calendar.Date) int {
	y, mo := p.Displayed()
	return (d.Year-y)*12 + int(d.Month-mo)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
