package api

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberviz/internal/analysis"
	"cyberviz/internal/plot"
)

type Handlers struct {
	summary analysis.Summary
	opts    plot.Options
}

// NewHandlers 持有加载后就不再变化的汇总结果，每个请求都从它重新生成图表。
func NewHandlers(summary analysis.Summary, opts plot.Options) *Handlers {
	return &Handlers{summary: summary, opts: opts}
}

type renderer interface {
	Render(w io.Writer) error
}

func (h *Handlers) Index(c *gin.Context) {
	set, err := plot.Build(h.summary, h.opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成图表失败：" + err.Error()})
		return
	}
	writeHTML(c, set.Page())
}

func (h *Handlers) Timeline(c *gin.Context) {
	writeHTML(c, plot.Timeline(h.summary.Timeline, h.opts))
}

func (h *Handlers) Protocols(c *gin.Context) {
	writeHTML(c, plot.Protocols(h.summary.Protocols, h.opts))
}

func (h *Handlers) TrafficTypes(c *gin.Context) {
	pie, err := plot.TrafficTypes(h.summary.TrafficTypes, h.opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成饼图失败：" + err.Error()})
		return
	}
	writeHTML(c, pie)
}

func (h *Handlers) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.summary)
}

// 先渲染到缓冲区，出错时还能返回 JSON 错误而不是半截 HTML。
func writeHTML(c *gin.Context, r renderer) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染失败：" + err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
