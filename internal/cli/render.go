package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cyberviz/internal/analysis"
	"cyberviz/internal/app"
	"cyberviz/internal/plot"
)

func newRenderCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [CSV]",
		Short: "Write the three charts as HTML files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			setInput(cfg, args)

			t, err := app.LoadTable(cc.Context(), *cfg)
			if err != nil {
				return err
			}
			paths, err := plot.WriteFiles(cfg.OutDir, analysis.Summarize(t), cfg.PlotOptions())
			if err != nil {
				return err
			}
			for _, p := range paths {
				log.Info("已写出图表", "path", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.OutDir, "out", cfg.OutDir, "输出目录")
	return cmd
}
