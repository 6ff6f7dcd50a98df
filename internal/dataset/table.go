package dataset

import (
	"time"

	"cyberviz/pkg/model"
)

// Table 以列式存储加载后的事件记录，三列按行下标对齐。
// 加载完成后只读，分析与渲染只做聚合，不修改任何一行。
type Table struct {
	Timestamps   []time.Time
	Protocols    []string
	TrafficTypes []string
}

func newTable(capHint int) *Table {
	if capHint <= 0 {
		capHint = 1024
	}
	return &Table{
		Timestamps:   make([]time.Time, 0, capHint),
		Protocols:    make([]string, 0, capHint),
		TrafficTypes: make([]string, 0, capHint),
	}
}

func (t *Table) append(ts time.Time, protocol, trafficType string) {
	t.Timestamps = append(t.Timestamps, ts)
	t.Protocols = append(t.Protocols, protocol)
	t.TrafficTypes = append(t.TrafficTypes, trafficType)
}

// Len 返回行数。nil Table 视为空表。
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Timestamps)
}

// FromEvents 把行式记录（例如从数据库读出）转换为列式表。
func FromEvents(events []model.Event) *Table {
	t := newTable(len(events))
	for _, e := range events {
		t.append(e.Timestamp, e.Protocol, e.TrafficType)
	}
	return t
}

// Events 把列式表还原为行式记录，用于写库和 JSON 输出。
func (t *Table) Events() []model.Event {
	out := make([]model.Event, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, model.Event{
			Timestamp:   t.Timestamps[i],
			Protocol:    t.Protocols[i],
			TrafficType: t.TrafficTypes[i],
		})
	}
	return out
}
