// Package debug 电路拓扑的导出：JSON 记录、网页拓扑图和静态图片。
package debug

import (
	"io"
	"path/filepath"
	"strings"

	"symboleq/errors"
)

// Renderer 输出接口
type Renderer interface {
	Render(w io.Writer) error
}

// Formats 支持的导出格式
var Formats = []string{"json", "html", "svg", "png", "pdf"}

// NewRenderer 按格式创建输出
func NewRenderer(list *Record, format string) (Renderer, error) {
	switch format = strings.ToLower(format); format {
	case "json":
		return list, nil
	case "html":
		return &Charts{Record: list}, nil
	case "svg", "png", "pdf":
		return &Plot{Record: list, Format: format}, nil
	}
	err := errors.Newf("不支持的导出格式 %q", format)
	return nil, errors.WithHintf(err, "可选格式: %s", strings.Join(Formats, ", "))
}

// FormatOf 由文件扩展名得到导出格式
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
