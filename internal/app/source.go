package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"cyberviz/internal/dataset"
	"cyberviz/internal/storage"
)

var (
	ErrNoSource   = errors.New("未指定数据来源：请给出 CSV 路径或 --db")
	ErrNoDatabase = errors.New("未指定数据库：请给出 --db")
)

// LoadTable 从 CSV 或数据库快照加载事件表，CSV 优先。
func LoadTable(ctx context.Context, cfg Config) (*dataset.Table, error) {
	switch {
	case cfg.Input != "":
		t, err := dataset.LoadFile(cfg.Input, cfg.DatasetOptions())
		if err != nil {
			return nil, err
		}
		log.Info("已加载 CSV", "path", cfg.Input, "rows", t.Len())
		return t, nil
	case cfg.DBPath != "":
		store, err := storage.Open(cfg.DBDriver, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		events, err := store.Events(ctx)
		if err != nil {
			return nil, fmt.Errorf("读取事件快照失败：%w", err)
		}
		log.Info("已加载数据库快照", "driver", cfg.DBDriver, "path", cfg.DBPath, "rows", len(events))
		return dataset.FromEvents(events), nil
	default:
		return nil, ErrNoSource
	}
}

// Import 把 CSV 中的全部事件写入数据库快照，返回写入的行数。
func Import(ctx context.Context, cfg Config) (int, error) {
	if cfg.Input == "" {
		return 0, ErrNoSource
	}
	if cfg.DBPath == "" {
		return 0, ErrNoDatabase
	}

	t, err := dataset.LoadFile(cfg.Input, cfg.DatasetOptions())
	if err != nil {
		return 0, err
	}

	store, err := storage.Open(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	if err := store.InsertBatch(ctx, t.Events()); err != nil {
		return 0, fmt.Errorf("写入数据库失败：%w", err)
	}
	log.Info("导入完成", "driver", cfg.DBDriver, "path", cfg.DBPath, "rows", t.Len())
	return t.Len(), nil
}
