package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("SHOWDATE_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHOWDATE_CONFIG_DIR", dir)

	want := &Config{
		Policy:   "future",
		Format:   "edn",
		LogLevel: "debug",
		TUI:      &TUIConfig{Theme: "dark", Glyphs: "ascii"},
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Fatalf("expected config.json: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHOWDATE_CONFIG_DIR", dir)

	body := "policy: past\ntui:\n  theme: light\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := &Config{Policy: "past", TUI: &TUIConfig{Theme: "light"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_JSONWinsOverYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHOWDATE_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"policy":"both"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("policy: past\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Policy != "both" {
		t.Fatalf("policy = %q, want both", got.Policy)
	}
}

func TestConfigValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Policy:   "sometimes",
		Format:   "xml",
		LogLevel: "loud",
		TUI:      &TUIConfig{Theme: "neon", Glyphs: "emoji"},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"policy", "format", "logLevel", "tui.theme", "tui.glyphs"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %s", msg, want)
		}
	}
}

func TestSaveConfig_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHOWDATE_CONFIG_DIR", dir)

	if err := SaveConfig(&Config{Policy: "nope"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); !os.IsNotExist(err) {
		t.Fatalf("invalid config must not be written")
	}
}
