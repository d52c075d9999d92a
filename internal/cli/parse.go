package cli

import (
	"showdate-cli/internal/calendar"

	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse VALUE",
		Short: "Parse a YYYY-M-D value and show its normalized and display forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"year":           d.Year,
					"month":          int(d.Month),
					"day":            d.Day,
					"persistedValue": d.String(),
					"displayLabel":   d.Label(),
				},
			})
		},
	}
}
