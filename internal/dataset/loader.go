package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultTimestampColumn   = "Timestamp"
	DefaultProtocolColumn    = "Protocol"
	DefaultTrafficTypeColumn = "Traffic Type"
)

// Columns 是三个必需字段在 CSV 表头中的名字。
type Columns struct {
	Timestamp   string `yaml:"timestamp"`
	Protocol    string `yaml:"protocol"`
	TrafficType string `yaml:"traffic_type"`
}

func DefaultColumns() Columns {
	return Columns{
		Timestamp:   DefaultTimestampColumn,
		Protocol:    DefaultProtocolColumn,
		TrafficType: DefaultTrafficTypeColumn,
	}
}

func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.Timestamp != "" {
		d.Timestamp = c.Timestamp
	}
	if c.Protocol != "" {
		d.Protocol = c.Protocol
	}
	if c.TrafficType != "" {
		d.TrafficType = c.TrafficType
	}
	return d
}

type Options struct {
	Columns            Columns
	TimestampLayout    string
	NormalizeProtocols bool
}

type columnIndex struct {
	timestamp   int
	protocol    int
	trafficType int
}

func LoadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开 CSV 失败：%w", err)
	}
	defer f.Close()

	t, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s：%w", path, err)
	}
	return t, nil
}

// Load 读取带表头的 CSV。多余的列忽略；任何一行 Timestamp 解析失败都会
// 让整个加载失败，不会跳过或补零。
func Load(r io.Reader, opts Options) (*Table, error) {
	cols := opts.Columns.withDefaults()

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("读取 CSV 表头失败：%w", err)
	}
	idx, err := locateColumns(header, cols)
	if err != nil {
		return nil, fmt.Errorf("CSV 表头校验失败：%w", err)
	}

	t := newTable(1024)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取 CSV 失败：%w", err)
		}

		raw := rec[idx.timestamp]
		ts, err := ParseTimestamp(raw, opts.TimestampLayout)
		if err != nil {
			line, _ := cr.FieldPos(idx.timestamp)
			return nil, &TimestampError{Line: line, Value: raw, Err: err}
		}

		protocol := strings.TrimSpace(rec[idx.protocol])
		if opts.NormalizeProtocols {
			protocol = NormalizeProtocol(protocol)
		}
		t.append(ts, protocol, strings.TrimSpace(rec[idx.trafficType]))
	}
	return t, nil
}

func locateColumns(header []string, cols Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		// 重名列以第一次出现为准。
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}

	var merr *multierror.Error
	find := func(name string) int {
		i, ok := pos[name]
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w：%q", ErrMissingColumn, name))
			return -1
		}
		return i
	}

	idx := columnIndex{
		timestamp:   find(cols.Timestamp),
		protocol:    find(cols.Protocol),
		trafficType: find(cols.TrafficType),
	}
	return idx, merr.ErrorOrNil()
}
