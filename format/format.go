// Package format 方程的输出记法。
//
// default 原样输出，maxima 把符号改写为带下标的形式：
//
//	(-V(n1))/R1 = I(V1)  ->  (-U[n1])/R[1] = I[V1]
package format

import (
	"strings"

	"symboleq/errors"
)

// Mode 输出记法
type Mode string

const (
	ModeDefault Mode = "default" // 原样输出
	ModeMaxima  Mode = "maxima"  // Maxima 下标记法
)

// Modes 支持的全部记法
func Modes() []Mode {
	return []Mode{ModeDefault, ModeMaxima}
}

// ParseMode 解析记法名称，不区分大小写
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, mode := range Modes() {
		if m == mode {
			return mode, nil
		}
	}
	err := errors.Wrapf(errors.ErrInvalidFormat, "%q", s)
	return "", errors.WithHintf(err, "可选格式: %s", strings.Join(modeNames(), ", "))
}

func modeNames() []string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return names
}

// NewFormatter 创建指定记法的格式化器
func NewFormatter(mode Mode) *Formatter {
	switch mode {
	case ModeMaxima:
		return &Formatter{Rules: MaximaRules()}
	default:
		return &Formatter{}
	}
}

// Render 按记法格式化一个方程字符串
func Render(s string, mode Mode) string {
	return NewFormatter(mode).Render(s)
}
