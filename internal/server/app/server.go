package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cyberviz/internal/analysis"
	"cyberviz/internal/plot"
	"cyberviz/internal/server/api"
)

type Config struct {
	ListenAddr string
	Plot       plot.Options
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg Config, summary analysis.Summary) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:8050"
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           NewRouter(summary, cfg.Plot),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter 注册预览页面与汇总接口。
func NewRouter(summary analysis.Summary, opts plot.Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	h := api.NewHandlers(summary, opts)
	router.GET("/", h.Index)
	charts := router.Group("/charts")
	{
		charts.GET("/timeline", h.Timeline)
		charts.GET("/protocols", h.Protocols)
		charts.GET("/traffic-types", h.TrafficTypes)
	}
	v1 := router.Group("/api/v1")
	{
		v1.GET("/summary", h.Summary)
	}
	return router
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
