package tui

import (
	"strings"
	"sync"
)

// Some fonts render arrows poorly; ASCII glyphs are the fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphPrev() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "‹"
}

func glyphNext() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}

func glyphDropdown(open bool) string {
	if glyphs() == glyphSetASCII {
		if open {
			return "^"
		}
		return "v"
	}
	if open {
		return "▴"
	}
	return "▾"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "..."
	}
	return "…"
}
