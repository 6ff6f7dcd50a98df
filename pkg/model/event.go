package model

import "time"

// StoredTimestampLayout 是事件时间落库时的文本格式，保留原始的时区偏移。
const StoredTimestampLayout = time.RFC3339Nano

// Event 是数据集中的一条网络安全事件记录。
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Protocol    string    `json:"protocol"`
	TrafficType string    `json:"traffic_type"`
}
