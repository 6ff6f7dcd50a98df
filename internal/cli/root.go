package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cyberviz/internal/app"
	"cyberviz/internal/logging"
)

const (
	shortDesc = "Render charts from recorded cybersecurity events."
	longDesc  = `cyberviz loads a CSV of recorded cybersecurity events (columns Timestamp,
Protocol and Traffic Type) and renders three charts:

  1. events over time by protocol (line chart)
  2. events by protocol (bar chart)
  3. proportion of traffic types (pie chart, largest share emphasised)
`
)

func NewRootCmd() *cobra.Command {
	cfg := app.DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:           "cyberviz",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML 配置文件路径，命令行参数优先于配置文件")
	pf.StringVar(&cfg.LogLevel, "log_level", cfg.LogLevel, "日志级别（debug, info, warn, error）")
	pf.StringVar(&cfg.LogFormat, "log_format", cfg.LogFormat, "日志格式（text, logfmt, json）")
	pf.StringVar(&cfg.Columns.Timestamp, "timestamp-column", cfg.Columns.Timestamp, "时间列名")
	pf.StringVar(&cfg.Columns.Protocol, "protocol-column", cfg.Columns.Protocol, "协议列名")
	pf.StringVar(&cfg.Columns.TrafficType, "traffic-type-column", cfg.Columns.TrafficType, "流量类型列名")
	pf.StringVar(&cfg.TimestampLayout, "timestamp-layout", cfg.TimestampLayout, "优先尝试的 Go 时间格式（如 2006-01-02 15:04:05）")
	pf.BoolVar(&cfg.NormalizeProtocols, "normalize-protocols", cfg.NormalizeProtocols, "协议名转大写，数字协议号翻译为协议名")
	pf.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "数据库类型：sqlite 或 duckdb")
	pf.StringVar(&cfg.DBPath, "db", cfg.DBPath, "事件快照数据库路径；未给出 CSV 时从这里读取")
	pf.StringVar(&cfg.AssetsHost, "assets-host", cfg.AssetsHost, "echarts 静态资源地址")
	pf.StringVar(&cfg.PageTitle, "page-title", cfg.PageTitle, "HTML 页面标题")

	err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		if configPath != "" {
			if err := loadConfigFile(cc.Flags(), configPath, &cfg); err != nil {
				return err
			}
		}

		if _, err := logging.Setup(cc.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
			return fmt.Errorf("创建日志器失败：%w", err)
		}
		return nil
	}

	cmd.AddCommand(newRenderCmd(&cfg))
	cmd.AddCommand(newShowCmd(&cfg))
	cmd.AddCommand(newSummaryCmd(&cfg))
	cmd.AddCommand(newImportCmd(&cfg))

	return cmd
}

// loadConfigFile 读取 YAML 配置后，把命令行上显式给出的参数重新写回，
// 保证优先级为：命令行 > 配置文件 > 默认值。
func loadConfigFile(flags *pflag.FlagSet, path string, cfg *app.Config) error {
	changed := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if err := app.LoadConfigFile(path, cfg); err != nil {
		return err
	}

	var merr *multierror.Error
	for name, value := range changed {
		if err := flags.Set(name, value); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("--%s：%w", name, err))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("参数非法：%w", err)
	}
	return nil
}

func setInput(cfg *app.Config, args []string) {
	if len(args) > 0 {
		cfg.Input = args[0]
	}
}
