package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"cyberviz/pkg/model"
)

type Store struct {
	db  *sql.DB
	ins *sql.Stmt
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "./events.sqlite"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("打开 SQLite 失败：%w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	ddl := `
CREATE TABLE IF NOT EXISTS cyber_events (
	ts_unix_micro INTEGER,
	ts            TEXT,
	protocol      TEXT,
	traffic_type  TEXT
);
CREATE INDEX IF NOT EXISTS idx_cyber_events_ts ON cyber_events(ts_unix_micro);
`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("建表失败：%w", err)
	}
	stmt, err := s.db.Prepare(`
INSERT INTO cyber_events (ts_unix_micro, ts, protocol, traffic_type) VALUES (?, ?, ?, ?);
`)
	if err != nil {
		return fmt.Errorf("准备插入语句失败：%w", err)
	}
	s.ins = stmt
	return nil
}

// InsertBatch 在一个事务里写入整批事件，失败时整批回滚。
// 时间同时存微秒时间戳（排序用）和带偏移的文本：驱动默认的 time.Time 文本带偏移时扫描不回来。
func (s *Store) InsertBatch(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败：%w", err)
	}
	stmt := tx.StmtContext(ctx, s.ins)
	for i := range events {
		e := &events[i]
		if _, err := stmt.ExecContext(ctx,
			e.Timestamp.UnixMicro(),
			e.Timestamp.Format(model.StoredTimestampLayout),
			e.Protocol,
			e.TrafficType,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("插入失败：%w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败：%w", err)
	}
	return nil
}

func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT ts, protocol, traffic_type
FROM cyber_events
ORDER BY ts_unix_micro ASC;
`)
	if err != nil {
		return nil, fmt.Errorf("查询失败：%w", err)
	}
	defer rows.Close()
	out := make([]model.Event, 0, 1024)
	for rows.Next() {
		var (
			e  model.Event
			ts string
		)
		if err := rows.Scan(&ts, &e.Protocol, &e.TrafficType); err != nil {
			return nil, fmt.Errorf("读取行失败：%w", err)
		}
		e.Timestamp, err = time.Parse(model.StoredTimestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("解析时间 %q 失败：%w", ts, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历结果失败：%w", err)
	}
	return out, nil
}

func (s *Store) Close() error {
	var firstErr error
	if s.ins != nil {
		if err := s.ins.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
