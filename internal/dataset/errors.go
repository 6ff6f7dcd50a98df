package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput       = errors.New("CSV 为空，缺少表头")
	ErrMissingColumn    = errors.New("缺少必需的列")
	ErrBlankTimestamp   = errors.New("Timestamp 为空")
	ErrInvalidTimestamp = errors.New("无法识别的时间格式")
)

// TimestampError 记录无法解析的 Timestamp 所在的 CSV 行号与原始值。
type TimestampError struct {
	Line  int
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("第 %d 行 Timestamp 解析失败：%q：%v", e.Line, e.Value, e.Err)
}

func (e *TimestampError) Unwrap() error {
	return e.Err
}
