package analysis

import (
	"sort"
	"strings"

	"cyberviz/internal/dataset"
)

// BlankCategory 是空白协议或流量类型在统计结果里的名字。空白值照样计数，保证各项之和等于行数。
const BlankCategory = "(blank)"

// Count 是某个取值出现的次数。
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountProtocols 统计每个协议出现的次数，按次数降序排列，次数相同按名字升序。
func CountProtocols(t *dataset.Table) []Count {
	return valueCounts(t.Protocols)
}

func valueCounts(values []string) []Count {
	m := make(map[string]int)
	for _, v := range values {
		m[categoryName(v)]++
	}
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func categoryName(v string) string {
	if strings.TrimSpace(v) == "" {
		return BlankCategory
	}
	return v
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
