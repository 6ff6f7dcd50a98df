package dataset

import (
	"strconv"
	"strings"

	"github.com/google/gopacket/layers"
)

const unknownIPProtocol = "UnknownIPProtocol"

// NormalizeProtocol 统一协议取值：纯数字按 IANA 协议号翻译（6 -> TCP），
// 其余转大写。未登记的协议号保留原文。
func NormalizeProtocol(v string) string {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseUint(v, 10, 8); err == nil {
		if name := layers.IPProtocol(n).String(); name != unknownIPProtocol {
			return name
		}
		return v
	}
	return strings.ToUpper(v)
}
