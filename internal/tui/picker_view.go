package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// gridWidth is seven 2-column cells with single spaces between them.
const gridWidth = 7*3 - 1

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var lines []string
	if t := strings.TrimSpace(m.opts.Title); t != "" {
		lines = append(lines, styleTitle().Render(truncateToWidth(t, m.width)))
	}
	lines = append(lines, m.viewTrigger())
	if m.picker.IsOpen() {
		lines = append(lines, "", m.viewGrid())
	}
	if m.status != "" {
		lines = append(lines, "", styleMuted().Render(truncateToWidth(m.status, m.width)))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m Model) viewTrigger() string {
	label := m.picker.DisplayLabel()
	if label == "" {
		label = m.opts.Placeholder
	}
	text := truncateToWidth(label, max(m.width-4, 1)) + " " + glyphDropdown(m.picker.IsOpen())
	return styleTrigger(m.focus == focusTrigger).Render(text)
}

func (m Model) viewGrid() string {
	y, mo := m.picker.Displayed()

	prev, next := glyphPrev(), glyphNext()
	if m.picker.CanNavigate(-1) {
		prev = styleDay().Render(prev)
	} else {
		prev = styleDayDisabled().Render(prev)
	}
	if m.picker.CanNavigate(1) {
		next = styleDay().Render(next)
	} else {
		next = styleDayDisabled().Render(next)
	}
	title := lipgloss.PlaceHorizontal(gridWidth-4, lipgloss.Center, styleTitle().Render(fmt.Sprintf("%s %d", mo, y)))
	header := prev + " " + title + " " + next

	rows := []string{header, styleMuted().Render(weekdayHeader)}
	for _, week := range m.picker.Weeks() {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = m.viewDay(day)
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewDay(day int) string {
	if day == 0 {
		return "  "
	}
	txt := fmt.Sprintf("%2d", day)
	switch {
	case day == m.cursor && m.focus == focusGrid:
		return styleDayCursor().Render(txt)
	case m.picker.IsSelected(day):
		return styleDaySelected().Render(txt)
	case !m.picker.IsSelectable(day):
		return styleDayDisabled().Render(txt)
	case m.picker.IsToday(day):
		return styleDayToday().Render(txt)
	default:
		return styleDay().Render(txt)
	}
}

func truncateToWidth(s string, w int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	ell := glyphEllipsis()
	ew := xansi.StringWidth(ell)
	if w <= ew {
		return xansi.Cut(s, 0, w)
	}
	return xansi.Cut(s, 0, w-ew) + ell
}
