package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"cyberviz/internal/analysis"
)

var headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

// Write 以文本表格输出三个聚合结果，顺序与图表顺序一致。
func Write(w io.Writer, sum analysis.Summary) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Cyber Events Over Time by Protocol (%d rows)", sum.Rows)))
	writeTimeline(w, sum.Timeline)

	fmt.Fprintln(w, headingStyle.Render("Distribution of Cyber Events by Protocol"))
	writeCounts(w, sum.Protocols)

	fmt.Fprintln(w, headingStyle.Render("Proportion of Traffic Types"))
	writeShares(w, sum.TrafficTypes)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetRowLine(false)
	return t
}

func writeTimeline(w io.Writer, tl analysis.Timeline) {
	t := newTable(w, append([]string{"Date"}, tl.Protocols...))
	for i, d := range tl.Dates {
		row := make([]string, 0, len(tl.Protocols)+1)
		row = append(row, d)
		for _, p := range tl.Protocols {
			row = append(row, strconv.Itoa(tl.Counts[p][i]))
		}
		t.Append(row)
	}
	t.Render()
}

func writeCounts(w io.Writer, counts []analysis.Count) {
	t := newTable(w, []string{"Protocol", "Events"})
	for _, c := range counts {
		t.Append([]string{c.Name, strconv.Itoa(c.Count)})
	}
	t.Render()
}

func writeShares(w io.Writer, s analysis.Shares) {
	t := newTable(w, []string{"Traffic Type", "Events", "Share", ""})
	for i, sl := range s.Slices {
		mark := ""
		if i == s.Largest {
			mark = "*"
		}
		t.Append([]string{sl.Name, strconv.Itoa(sl.Count), fmt.Sprintf("%.1f%%", sl.Percent), mark})
	}
	t.Render()
}
