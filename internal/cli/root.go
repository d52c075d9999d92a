package cli

import (
	"fmt"
	"os"
	"strings"

	"showdate-cli/internal/calendar"
	"showdate-cli/internal/format"
	"showdate-cli/internal/store"
	"showdate-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Policy     string
	Today      string
	Value      string
	Format     string
	PrettyJSON bool
	LogLevel   string

	cfg *store.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	var (
		title     string
		once      bool
		altScreen bool
	)

	cmd := &cobra.Command{
		Use:          "showdate",
		Short:        "Policy-bounded calendar date picker (TUI + scriptable commands)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a future date interactively; the chosen value is printed on exit
  showdate --policy future

  # Start from an existing value and stop after the first selection
  showdate --value 2024-6-3 --once

  # Scriptable: month grid, per-day checks, simulated clicks
  showdate month --today 2024-6-15 --policy past --navigate -1
  showdate check 16 --today 2024-6-15 --policy past
  showdate pick 20 --policy future
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.newPicker()
			if err != nil {
				return writeErr(cmd, err)
			}
			value, err := tui.Run(p, tui.Options{
				Title:        title,
				Theme:        app.tuiConfig().Theme,
				Glyphs:       app.tuiConfig().Glyphs,
				QuitOnSelect: once,
				AltScreen:    altScreen,
				Log:          app.log,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.Policy, "policy", envOr("SHOWDATE_POLICY", ""), "Selectable dates: past|future|both (default from config, else both)")
	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("SHOWDATE_TODAY", ""), "Pin today's date (YYYY-M-D) instead of reading the clock")
	cmd.PersistentFlags().StringVar(&app.Value, "value", "", "Existing value (YYYY-M-D) to initialize the picker with")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("SHOWDATE_FORMAT", ""), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("SHOWDATE_LOG_LEVEL", ""), "Log level (debug|info|warn|error); logs go to stderr")

	cmd.Flags().StringVar(&title, "title", "", "Label shown above the date field")
	cmd.Flags().BoolVar(&once, "once", false, "Exit after the first selection change")
	cmd.Flags().BoolVar(&altScreen, "alt-screen", false, "Use the terminal's alternate screen")

	cmd.AddCommand(newMonthCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// setup resolves flag > env > config file > built-in defaults and builds
// the logger.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, fmt.Errorf("load config: %w", err))
	}
	app.cfg = cfg
	app.Policy = firstNonEmpty(app.Policy, cfg.Policy, calendar.Both.String())
	app.Format = firstNonEmpty(app.Format, cfg.Format, "json")
	app.LogLevel = firstNonEmpty(app.LogLevel, cfg.LogLevel, "warn")

	log, err := newLogger(cmd.ErrOrStderr(), app.LogLevel)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.log = log.With(zap.String("cmd", cmd.Name()))
	return nil
}

func (app *App) tuiConfig() store.TUIConfig {
	if app.cfg == nil || app.cfg.TUI == nil {
		return store.TUIConfig{}
	}
	return *app.cfg.TUI
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
