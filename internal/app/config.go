package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cyberviz/internal/dataset"
	"cyberviz/internal/plot"
	"cyberviz/internal/storage"
)

type Config struct {
	Input              string          `yaml:"input"`
	Columns            dataset.Columns `yaml:"columns"`
	TimestampLayout    string          `yaml:"timestamp_layout"`
	NormalizeProtocols bool            `yaml:"normalize_protocols"`

	DBDriver string `yaml:"db_driver"`
	DBPath   string `yaml:"db_path"`

	AssetsHost string `yaml:"assets_host"`
	PageTitle  string `yaml:"page_title"`
	OutDir     string `yaml:"out_dir"`
	ListenAddr string `yaml:"listen_addr"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func DefaultConfig() Config {
	return Config{
		Columns:    dataset.DefaultColumns(),
		DBDriver:   storage.DriverSQLite,
		OutDir:     "./charts",
		ListenAddr: "127.0.0.1:8050",
		PageTitle:  plot.PageTitle,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadConfigFile 把 YAML 配置叠加到 cfg 上，文件里没写的字段保持原值。
// 文件里的相对路径（input、db_path、out_dir）相对配置文件所在目录解析。
func LoadConfigFile(path string, cfg *Config) error {
	before := *cfg

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开配置文件失败：%w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("解析配置文件失败：%w", err)
	}

	dir := filepath.Dir(path)
	cfg.Input = resolvePath(dir, before.Input, cfg.Input)
	cfg.DBPath = resolvePath(dir, before.DBPath, cfg.DBPath)
	cfg.OutDir = resolvePath(dir, before.OutDir, cfg.OutDir)
	return nil
}

// resolvePath 只处理由配置文件改写过的相对路径。
func resolvePath(dir, before, after string) string {
	if after == "" || after == before || filepath.IsAbs(after) {
		return after
	}
	return filepath.Join(dir, after)
}

func (c Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		Columns:            c.Columns,
		TimestampLayout:    c.TimestampLayout,
		NormalizeProtocols: c.NormalizeProtocols,
	}
}

func (c Config) PlotOptions() plot.Options {
	return plot.Options{AssetsHost: c.AssetsHost, PageTitle: c.PageTitle}
}
