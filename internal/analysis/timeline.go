package analysis

import (
	"cyberviz/internal/dataset"
)

// DateLayout 是时间线横轴的日期格式，字典序即时间序。
const DateLayout = "2006-01-02"

// Timeline 是按（日历日期，协议）分组后的计数矩阵。
// Counts[protocol][i] 对应 Dates[i]，没有记录的组合为 0。
type Timeline struct {
	Dates     []string         `json:"dates"`
	Protocols []string         `json:"protocols"`
	Counts    map[string][]int `json:"counts"`
}

// BuildTimeline 按记录自身时区的日历日期与协议分组计数。
func BuildTimeline(t *dataset.Table) Timeline {
	type groupKey struct {
		date     string
		protocol string
	}

	groups := make(map[groupKey]int)
	dateSet := make(map[string]struct{})
	protocolSet := make(map[string]struct{})
	for i := 0; i < t.Len(); i++ {
		k := groupKey{
			date:     t.Timestamps[i].Format(DateLayout),
			protocol: categoryName(t.Protocols[i]),
		}
		groups[k]++
		dateSet[k.date] = struct{}{}
		protocolSet[k.protocol] = struct{}{}
	}

	dates := sortedKeys(dateSet)
	protocols := sortedKeys(protocolSet)

	dateIdx := make(map[string]int, len(dates))
	for i, d := range dates {
		dateIdx[d] = i
	}
	counts := make(map[string][]int, len(protocols))
	for _, p := range protocols {
		counts[p] = make([]int, len(dates))
	}
	for k, n := range groups {
		counts[k.protocol][dateIdx[k.date]] = n
	}

	return Timeline{
		Dates:     dates,
		Protocols: protocols,
		Counts:    counts,
	}
}

// Total 返回所有日期、所有协议的计数之和，应等于表的行数。
func (tl Timeline) Total() int {
	total := 0
	for _, series := range tl.Counts {
		for _, n := range series {
			total += n
		}
	}
	return total
}
