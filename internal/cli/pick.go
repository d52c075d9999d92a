package cli

import (
	"showdate-cli/internal/form"

	"github.com/spf13/cobra"
)

func newPickCmd(app *App) *cobra.Command {
	var (
		navigate int
		field    string
	)

	cmd := &cobra.Command{
		Use:   "pick DAY",
		Short: "Simulate clicking a day: select it if the policy allows and report the new value",
		Long: `Opens the picker, moves the display by --navigate months, and clicks DAY.
The result reports whether the widget-updated signal fired and what the
bound form field now holds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.newPicker()
			if err != nil {
				return writeErr(cmd, err)
			}
			f := form.New(app.log)
			f.Bind(field, p)

			p.Open()
			moved := p.Navigate(navigate)
			day, err := parseDay(p, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			selectable := p.IsSelectable(day)
			p.OnDateClick(day)

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"navigated":      moved,
					"selectable":     selectable,
					"widgetUpdated":  f.Updates(field) > 0,
					"isOpen":         p.IsOpen(),
					"persistedValue": p.PersistedValue(),
					"displayLabel":   p.DisplayLabel(),
					"form": map[string]any{
						"dirty":  f.Dirty(),
						"values": f.Values(),
					},
				},
			})
		},
	}

	cmd.Flags().IntVar(&navigate, "navigate", 0, "Months to move the display before clicking (negative = back)")
	cmd.Flags().StringVar(&field, "field", "date", "Form field name the picker is bound to")
	return cmd
}
