package commands

import (
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Site statistics",
	}
	cmd.AddCommand(statsTotalsCmd())
	return cmd
}

func statsTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show the number of orders per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			totals, err := app.reports.OrderTotals(cmd.Context(), siteID)
			if err != nil {
				return err
			}
			return printJSON(totals)
		},
	}
}
