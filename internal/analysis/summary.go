package analysis

import "cyberviz/internal/dataset"

// Summary 汇总三个图表所需的全部聚合结果，三者互不依赖，只共享同一张输入表。
type Summary struct {
	Rows         int      `json:"rows"`
	Timeline     Timeline `json:"timeline"`
	Protocols    []Count  `json:"protocols"`
	TrafficTypes Shares   `json:"traffic_types"`
}

func Summarize(t *dataset.Table) Summary {
	return Summary{
		Rows:         t.Len(),
		Timeline:     BuildTimeline(t),
		Protocols:    CountProtocols(t),
		TrafficTypes: ComputeTrafficShares(t),
	}
}
