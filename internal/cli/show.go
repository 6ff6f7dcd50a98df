package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"cyberviz/internal/analysis"
	"cyberviz/internal/app"
	"cyberviz/internal/plot"
	server "cyberviz/internal/server/app"
)

func newShowCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [CSV]",
		Short: "Serve the three charts on a local preview page until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			setInput(cfg, args)

			ctx, stop := signal.NotifyContext(cc.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			t, err := app.LoadTable(ctx, *cfg)
			if err != nil {
				return err
			}
			if t.Len() == 0 {
				return fmt.Errorf("数据集为空：%w", plot.ErrNoData)
			}
			return serve(ctx, cfg, analysis.Summarize(t))
		},
	}
	cmd.Flags().StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "预览服务监听地址")
	return cmd
}

func serve(ctx context.Context, cfg *app.Config, sum analysis.Summary) error {
	gin.SetMode(gin.ReleaseMode)
	srv := server.NewServer(server.Config{
		ListenAddr: cfg.ListenAddr,
		Plot:       cfg.PlotOptions(),
	}, sum)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	base := baseURL(srv.Addr())
	log.Info("图表预览已启动，按 Ctrl+C 退出", "url", base+"/")
	log.Debug("单个图表", "timeline", base+"/charts/timeline",
		"protocols", base+"/charts/protocols",
		"traffic_types", base+"/charts/traffic-types")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server 运行失败：%w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server 关闭失败：%w", err)
	}
	log.Info("预览已停止")
	return nil
}

func baseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
