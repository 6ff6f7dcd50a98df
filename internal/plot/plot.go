package plot

import (
	"errors"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"cyberviz/internal/analysis"
)

const (
	TimelineTitle     = "Cyber Events Over Time by Protocol"
	ProtocolsTitle    = "Distribution of Cyber Events by Protocol"
	TrafficTypesTitle = "Proportion of Traffic Types"

	PageTitle = "Cyber Attacks Visualization"

	barColor = "orange"
	// 饼图起始角度，单位为度。
	pieStartAngle = 140
)

var ErrNoData = errors.New("没有可绘制的数据")

// pairedPalette 是 12 色的 "Paired" 调色板。
var pairedPalette = []string{
	"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99", "#e31a1c",
	"#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
}

// Options 控制图表的静态资源地址与页面标题。
type Options struct {
	AssetsHost string
	PageTitle  string
}

func (o Options) initialization(width, height string) opts.Initialization {
	return opts.Initialization{
		PageTitle:  o.pageTitle(),
		Width:      width,
		Height:     height,
		AssetsHost: o.AssetsHost,
	}
}

func (o Options) pageTitle() string {
	if o.PageTitle == "" {
		return PageTitle
	}
	return o.PageTitle
}

// Timeline 画每个协议一条折线的时间序列图。
func Timeline(tl analysis.Timeline, o Options) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization("1500px", "500px")),
		charts.WithTitleOpts(opts.Title{Title: TimelineTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "5%"}),
		// 时间轴按实际间隔排布日期，中间没有事件的日子也占位置。
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			Type:      "time",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Events"}),
	)

	for _, protocol := range tl.Protocols {
		series := tl.Counts[protocol]
		data := make([]opts.LineData, 0, len(series))
		for i, n := range series {
			data = append(data, opts.LineData{Value: []interface{}{tl.Dates[i], n}})
		}
		line.AddSeries(protocol, data)
	}
	return line
}

// Protocols 画每个协议一根柱子的柱状图，顺序与计数顺序一致。
func Protocols(counts []analysis.Count, o Options) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization("1000px", "500px")),
		charts.WithTitleOpts(opts.Title{Title: ProtocolsTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Protocol",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Events"}),
	)

	names := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Name)
		data = append(data, opts.BarData{Name: c.Name, Value: c.Count})
	}
	bar.SetXAxis(names).AddSeries("Number of Events", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: barColor}),
	)
	return bar
}

// TrafficTypes 画流量类型占比饼图，占比最大的一块处于选中（外移）状态并加描边。
func TrafficTypes(s analysis.Shares, o Options) (*charts.Pie, error) {
	if len(s.Slices) == 0 {
		return nil, ErrNoData
	}

	data := make([]opts.PieData, 0, len(s.Slices))
	for i, sl := range s.Slices {
		d := opts.PieData{
			Name:  sl.Name,
			Value: sl.Count,
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Formatter: types.FuncStr(percentLabel(sl)),
			},
			ItemStyle: &opts.ItemStyle{Color: pairedColor(i, len(s.Slices))},
		}
		if i == s.Largest {
			d.Selected = opts.Bool(true)
			d.ItemStyle.BorderColor = "#ffffff"
			d.ItemStyle.BorderWidth = 2
		}
		data = append(data, d)
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization("800px", "800px")),
		charts.WithTitleOpts(opts.Title{Title: TrafficTypesTitle, Left: "center", Top: "20"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	pie.AddSeries("Traffic Type", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: "60%", Center: []string{"50%", "55%"}}),
		charts.WithSeriesOpts(func(series *charts.SingleSeries) {
			series.StartAngle = pieStartAngle
			series.SelectedMode = opts.Bool(true)
		}),
	)
	return pie, nil
}

// Page 把三个图表按顺序放进同一个 HTML 页面。
func Page(o Options, cs ...components.Charter) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(o.pageTitle())
	if o.AssetsHost != "" {
		page.SetAssetsHost(o.AssetsHost)
	}
	page.AddCharts(cs...)
	return page
}

// Build 从汇总结果生成全部图表及组合页面。图表对象只能渲染一次，每次输出都要重新生成。
func Build(sum analysis.Summary, o Options) (*Set, error) {
	pie, err := TrafficTypes(sum.TrafficTypes, o)
	if err != nil {
		return nil, fmt.Errorf("生成饼图失败：%w", err)
	}
	return &Set{
		Timeline:     Timeline(sum.Timeline, o),
		Protocols:    Protocols(sum.Protocols, o),
		TrafficTypes: pie,
		options:      o,
	}, nil
}

// Set 是一次渲染用到的三个图表。
type Set struct {
	Timeline     *charts.Line
	Protocols    *charts.Bar
	TrafficTypes *charts.Pie

	options Options
}

func (s *Set) Page() *components.Page {
	return Page(s.options, s.Timeline, s.Protocols, s.TrafficTypes)
}

func pairedColor(i, n int) string {
	if n <= 0 {
		return pairedPalette[0]
	}
	return pairedPalette[i*len(pairedPalette)/n]
}

func percentLabel(sl analysis.Slice) string {
	return fmt.Sprintf("{b}: %.1f%%", sl.Percent)
}
