package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

// New 按字符串形式的级别和格式创建日志器，非法取值返回错误。
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("日志级别非法：%w", err)
	}
	formatter, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}), nil
}

// Setup 创建日志器并设为全局默认。
func Setup(w io.Writer, level, format string) (*log.Logger, error) {
	l, err := New(w, level, format)
	if err != nil {
		return nil, err
	}
	log.SetDefault(l)
	return l, nil
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case TextFormat, "":
		return log.TextFormatter, nil
	case LogfmtFormat:
		return log.LogfmtFormatter, nil
	case JSONFormat:
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("未知的日志格式：%q", format)
	}
}
