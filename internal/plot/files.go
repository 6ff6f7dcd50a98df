package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cyberviz/internal/analysis"
)

const (
	TimelineFile     = "timeline.html"
	ProtocolsFile    = "protocols.html"
	TrafficTypesFile = "traffic_types.html"
	IndexFile        = "index.html"
)

type renderer interface {
	Render(w io.Writer) error
}

// WriteFiles 把三个图表各写成一个 HTML 文件，再写一个按顺序包含三者的 index.html。
// 返回写出的文件路径。
func WriteFiles(dir string, sum analysis.Summary, o Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败：%w", err)
	}

	single, err := Build(sum, o)
	if err != nil {
		return nil, err
	}
	// 组合页面会重新校验图表，用一组独立的图表对象生成。
	combined, err := Build(sum, o)
	if err != nil {
		return nil, err
	}

	outputs := []struct {
		name string
		r    renderer
	}{
		{TimelineFile, single.Timeline},
		{ProtocolsFile, single.Protocols},
		{TrafficTypesFile, single.TrafficTypes},
		{IndexFile, combined.Page()},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := writeFile(path, out.r); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, r renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建文件失败：%w", err)
	}
	if err := r.Render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("渲染 %s 失败：%w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("关闭文件失败：%w", err)
	}
	return nil
}
