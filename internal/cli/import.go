package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cyberviz/internal/app"
)

func newImportCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import CSV",
		Short: "Store the events of a CSV file in a SQLite or DuckDB snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			setInput(cfg, args)

			n, err := app.Import(cc.Context(), *cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.OutOrStdout(), "imported %d events into %s\n", n, cfg.DBPath)
			return nil
		},
	}
}
