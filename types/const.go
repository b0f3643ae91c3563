package types

// 默认符号常量定义
const (
	MarkerUnknown = "[unknown]" // 未识别元件的标记
	SymbolZero    = "0"         // 空方程侧
)

// DefaultGroundNames 默认的参考地节点名称
var DefaultGroundNames = []string{"0", "gnd"}
