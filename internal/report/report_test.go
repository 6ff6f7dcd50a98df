package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cyberviz/internal/analysis"
	"cyberviz/internal/dataset"
	"cyberviz/pkg/model"
)

func TestWrite(t *testing.T) {
	ts := time.Date(2023, 5, 30, 6, 0, 0, 0, time.UTC)
	sum := analysis.Summarize(dataset.FromEvents([]model.Event{
		{Timestamp: ts, Protocol: "UDP", TrafficType: "DNS"},
		{Timestamp: ts, Protocol: "UDP", TrafficType: "DNS"},
		{Timestamp: ts.Add(24 * time.Hour), Protocol: "TCP", TrafficType: "HTTP"},
	}))

	var buf bytes.Buffer
	Write(&buf, sum)
	out := buf.String()

	assert.Contains(t, out, "Cyber Events Over Time by Protocol (3 rows)")
	assert.Contains(t, out, "2023-05-30")
	assert.Contains(t, out, "2023-05-31")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "33.3%")

	// 最大的一块带标记。
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "DNS") {
			assert.Contains(t, line, "*")
		}
		if strings.Contains(line, "HTTP") && strings.Contains(line, "%") {
			assert.NotContains(t, line, "*")
		}
	}
}
