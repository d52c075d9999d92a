package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMonthCmd(app *App) *cobra.Command {
	var navigate int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the displayed month grid with per-day flags",
		Example: strings.TrimSpace(`
showdate month --today 2024-6-15 --policy future
showdate month --value 2023-12-24 --navigate 1
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.newPicker()
			if err != nil {
				return writeErr(cmd, err)
			}
			moved := p.Navigate(navigate)
			if !moved {
				app.log.Info("navigation refused", zap.Int("delta", navigate), zap.String("policy", app.Policy))
			}
			env := map[string]any{
				"data": map[string]any{
					"navigated": moved,
					"month":     monthOf(p),
				},
			}
			if !moved {
				env["_hints"] = []string{"navigation outside the " + p.Policy().String() + " policy is ignored"}
			}
			return writeOut(cmd, app, env)
		},
	}

	cmd.Flags().IntVar(&navigate, "navigate", 0, "Months to move the display before rendering (negative = back)")
	return cmd
}
