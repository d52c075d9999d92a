package cli

import (
	"fmt"
	"strings"

	"showdate-cli/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the config file and the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"path": path,
					"file": app.cfg,
					"effective": map[string]any{
						"policy":   app.Policy,
						"format":   app.Format,
						"logLevel": app.LogLevel,
						"tui":      app.tuiConfig(),
					},
				},
			})
		},
	}

	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a config key (policy, format, logLevel, tui.theme, tui.glyphs)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *app.cfg
			if cfg.TUI != nil {
				tuiCfg := *cfg.TUI
				cfg.TUI = &tuiCfg
			}
			if err := setConfigKey(&cfg, args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(&cfg); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("config updated", zap.String("key", args[0]), zap.String("value", args[1]))
			return writeOut(cmd, app, map[string]any{"data": &cfg})
		},
	}
}

func setConfigKey(cfg *store.Config, k, v string) error {
	ensureTUI := func() *store.TUIConfig {
		if cfg.TUI == nil {
			cfg.TUI = &store.TUIConfig{}
		}
		return cfg.TUI
	}
	switch strings.TrimSpace(k) {
	case "policy":
		cfg.Policy = v
	case "format":
		cfg.Format = v
	case "logLevel", "log-level":
		cfg.LogLevel = v
	case "tui.theme":
		ensureTUI().Theme = v
	case "tui.glyphs":
		ensureTUI().Glyphs = v
	default:
		return fmt.Errorf("unknown config key %q", k)
	}
	return nil
}
