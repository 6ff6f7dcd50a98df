package dataset

import (
	"strings"
	"time"
)

// 不带时区的格式按 UTC 解释；"01/02/2006" 一类按月在前处理。
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// ParseTimestamp 解析一个时间字段。layout 非空时优先尝试。
func ParseTimestamp(raw, layout string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, ErrBlankTimestamp
	}
	if layout != "" {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, nil
		}
	}
	for _, l := range timestampLayouts {
		if ts, err := time.Parse(l, v); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
