package cli

import (
	"github.com/spf13/cobra"

	"cyberviz/internal/analysis"
	"cyberviz/internal/app"
	"cyberviz/internal/report"
)

func newSummaryCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [CSV]",
		Short: "Print the aggregated chart data as tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			setInput(cfg, args)

			t, err := app.LoadTable(cc.Context(), *cfg)
			if err != nil {
				return err
			}
			report.Write(cc.OutOrStdout(), analysis.Summarize(t))
			return nil
		},
	}
}
