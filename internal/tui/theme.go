package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The picker must stay readable on light and dark terminals, so colors are
// adaptive and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorAccent    = ac("27", "62")
	colorAccentFg  = ac("255", "235")
	colorCursorBg  = ac("#e9e9e9", "#262626")
	colorCursorFg  = ac("235", "255")
	colorToday     = ac("166", "214")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleTrigger(focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if focused {
		st = st.Underline(true)
	}
	return st
}

// Day cell styles, in increasing priority.
func styleDay() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSurfaceFg)
}

func styleDayDisabled() lipgloss.Style {
	return styleMuted()
}

func styleDayToday() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorToday).Bold(true)
}

func styleDaySelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true)
}

func styleDayCursor() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorCursorFg).Background(colorCursorBg).Underline(true)
}

// applyColorProfilePreference honors NO_COLOR and otherwise trusts
// TERM/COLORTERM when they claim more than termenv detects.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference picks the adaptive color variant.
//
// Priority:
// 1) theme argument (from config/flags): light|dark|auto
// 2) SHOWDATE_TUI_THEME
// 3) COLORFGBG heuristic ("fg;bg", last segment is bg)
func applyThemePreference(theme string) {
	if v := strings.TrimSpace(theme); v == "" || strings.EqualFold(v, "auto") {
		theme = os.Getenv("SHOWDATE_TUI_THEME")
	}
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
