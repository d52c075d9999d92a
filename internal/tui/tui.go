// Package tui hosts a calendar.Picker in a Bubble Tea program.
package tui

import (
	"showdate-cli/internal/calendar"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives p interactively until the user quits (or, with QuitOnSelect,
// until the first selection change) and returns p's persisted value.
func Run(p *calendar.Picker, opts Options) (string, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(New(p, opts), popts...).Run(); err != nil {
		return "", err
	}
	return p.PersistedValue(), nil
}
