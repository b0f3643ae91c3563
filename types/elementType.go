package types

import "strings"

// 电路元件类型常量定义
const (
	TypeUnknown       ElementType = iota // 未知类型
	TypeResistor                         // 电阻
	TypeCapacitor                        // 电容
	TypeInductor                         // 电感
	TypeCurrentSource                    // 独立电流源
	TypeVoltageSource                    // 独立电压源
)

// ElementType 元件类型
type ElementType uint

// slementTypeString 元件映射
var slementTypeString = map[ElementType]struct {
	Name   string // 显示名称
	Prefix string // 网表前缀
}{
	TypeUnknown:       {Name: "Unknown", Prefix: ""},
	TypeResistor:      {Name: "Resistor", Prefix: "R"},
	TypeCapacitor:     {Name: "Capacitor", Prefix: "C"},
	TypeInductor:      {Name: "Inductor", Prefix: "L"},
	TypeCurrentSource: {Name: "CurrentSource", Prefix: "I"},
	TypeVoltageSource: {Name: "VoltageSource", Prefix: "V"},
}

// mapName 前缀到类型，由 slementTypeString 生成
var mapName = map[string]ElementType{}

func init() {
	for t := range slementTypeString {
		if p := t.Prefix(); p != "" {
			mapName[p] = t
		}
	}
}

// mapPostCount 非线性器件的引脚数量
// 这些器件不参与方程生成，但需要知道哪些字段是节点
var mapPostCount = map[string]int{
	"B": 2, // 行为源
	"D": 2, // 二极管
	"E": 4, // 电压控制电压源
	"F": 2, // 电流控制电流源
	"G": 4, // 电压控制电流源
	"H": 2, // 电流控制电压源
	"J": 3, // 结型场效应管
	"K": 0, // 互感，引用电感而不是节点
	"M": 4, // MOS管
	"Q": 3, // 三极管
	"S": 4, // 压控开关
	"T": 4, // 传输线
	"W": 2, // 流控开关
	"Z": 3, // MESFET
}

// String 返回元件类型的字符串表示
func (t ElementType) String() string {
	if et, ok := slementTypeString[t]; ok {
		return et.Name
	}
	return "Unknown"
}

// Prefix 网表前缀
func (t ElementType) Prefix() string {
	return slementTypeString[t].Prefix
}

// IsTwoTerminal 是否为二端线性元件
func (t ElementType) IsTwoTerminal() bool {
	return t != TypeUnknown && t <= TypeVoltageSource
}

// GetNameType 通过前缀获取类型
func GetNameType(prefix string) ElementType {
	return mapName[strings.ToUpper(prefix)]
}

// GetPostCount 获取引脚数量
// fields 为元件名之后的字段数量，子电路实例使用除最后一个字段外的全部字段
func GetPostCount(prefix string, fields int) int {
	prefix = strings.ToUpper(prefix)
	if GetNameType(prefix).IsTwoTerminal() {
		return 2
	}
	if prefix == "X" {
		return max(fields-1, 0)
	}
	if n, ok := mapPostCount[prefix]; ok {
		return n
	}
	return 2
}
