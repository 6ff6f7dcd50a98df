package analysis

import "cyberviz/internal/dataset"

// Slice 是饼图中的一块。
type Slice struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Shares 是各流量类型的占比。Largest 是占比最大的一块在 Slices 中的下标，
// 没有数据时为 -1。
type Shares struct {
	Slices  []Slice `json:"slices"`
	Total   int     `json:"total"`
	Largest int     `json:"largest"`
}

// ComputeTrafficShares 统计每种流量类型的数量和百分比，顺序与 CountProtocols 相同，
// 因此最大的一块总在第一个位置。
func ComputeTrafficShares(t *dataset.Table) Shares {
	counts := valueCounts(t.TrafficTypes)
	s := Shares{
		Slices:  make([]Slice, 0, len(counts)),
		Total:   t.Len(),
		Largest: -1,
	}
	for _, c := range counts {
		s.Slices = append(s.Slices, Slice{
			Name:    c.Name,
			Count:   c.Count,
			Percent: 100 * float64(c.Count) / float64(s.Total),
		})
	}
	if len(s.Slices) > 0 {
		s.Largest = 0
	}
	return s
}

// LargestSlice 返回占比最大的一块。
func (s Shares) LargestSlice() (Slice, bool) {
	if s.Largest < 0 || s.Largest >= len(s.Slices) {
		return Slice{}, false
	}
	return s.Slices[s.Largest], true
}
