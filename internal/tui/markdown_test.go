package tui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	t.Setenv("SHOWDATE_TUI_THEME", "light")

	if got := RenderMarkdown("   ", 80); got != "" {
		t.Fatalf("blank markdown rendered as %q", got)
	}
	out := RenderMarkdown("# Policies\n\nToday and **later**.", 40)
	for _, want := range []string{"Policies", "later"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered output missing %q:\n%s", want, out)
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("trailing newline not trimmed")
	}
	// Same style + width reuses the cached renderer.
	again := RenderMarkdown("# Policies\n\nToday and **later**.", 40)
	if again != out {
		t.Fatalf("cached render differs")
	}
}
