package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"cyberviz/pkg/model"
)

type Store struct {
	db   *sql.DB
	ins  *sql.Stmt
	path string
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "./events.duckdb"
	}
	// DuckDB 是嵌入式分析型数据库：单文件、列式存储，适合保存整份事件快照后反复聚合。
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("打开 DuckDB 失败：%w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	ddl := `
CREATE TABLE IF NOT EXISTS cyber_events (
	ts           TIMESTAMPTZ,
	ts_local     VARCHAR,
	protocol     VARCHAR,
	traffic_type VARCHAR
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("建表失败：%w", err)
	}

	// TIMESTAMPTZ 读出来统一是 UTC，按日期分组需要原始偏移，所以另存一份带偏移的文本。
	// 插入使用 prepared statement，减少每次写入的 SQL 解析开销。
	stmt, err := s.db.Prepare(`
INSERT INTO cyber_events (ts, ts_local, protocol, traffic_type) VALUES (?, ?, ?, ?);
`)
	if err != nil {
		return fmt.Errorf("准备插入语句失败：%w", err)
	}
	s.ins = stmt
	return nil
}

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
			e.Timestamp,
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
SELECT ts_local, protocol, traffic_type
FROM cyber_events
ORDER BY ts ASC;
`)
	if err != nil {
		return nil, fmt.Errorf("查询失败：%w", err)
	}
	defer rows.Close()

	out := make([]model.Event, 0, 1024)
	for rows.Next() {
		var (
			e     model.Event
			local string
		)
		if err := rows.Scan(&local, &e.Protocol, &e.TrafficType); err != nil {
			return nil, fmt.Errorf("读取行失败：%w", err)
		}
		e.Timestamp, err = time.Parse(model.StoredTimestampLayout, local)
		if err != nil {
			return nil, fmt.Errorf("解析时间 %q 失败：%w", local, err)
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
