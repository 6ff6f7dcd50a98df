package storage

import (
	"fmt"
	"strings"

	"cyberviz/internal/storage/duckdb"
	"cyberviz/internal/storage/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

// Open 按 driver 打开对应的存储后端。
func Open(driver, path string) (Store, error) {
	switch strings.ToLower(driver) {
	case DriverSQLite, "":
		return sqlite.NewStore(path)
	case DriverDuckDB:
		return duckdb.NewStore(path)
	default:
		return nil, fmt.Errorf("%w：%q（可选 sqlite 或 duckdb）", ErrUnknownDriver, driver)
	}
}
