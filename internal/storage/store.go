package storage

import (
	"context"
	"errors"

	"cyberviz/pkg/model"
)

var ErrUnknownDriver = errors.New("未知的数据库类型")

// Store 保存事件快照，供后续渲染直接读取而不必重新解析 CSV。
type Store interface {
	InsertBatch(ctx context.Context, events []model.Event) error
	Events(ctx context.Context) ([]model.Event, error)
	Close() error
}
