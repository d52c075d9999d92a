package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var navigate int

	cmd := &cobra.Command{
		Use:   "check DAY",
		Short: "Report whether a day of the displayed month is today, selectable and selected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.newPicker()
			if err != nil {
				return writeErr(cmd, err)
			}
			moved := p.Navigate(navigate)
			day, err := parseDay(p, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			y, m := p.Displayed()
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"year":       y,
					"month":      int(m),
					"day":        day,
					"navigated":  moved,
					"isToday":    p.IsToday(day),
					"selectable": p.IsSelectable(day),
					"selected":   p.IsSelected(day),
				},
			})
		},
	}

	cmd.Flags().IntVar(&navigate, "navigate", 0, "Months to move the display first (negative = back)")
	return cmd
}
