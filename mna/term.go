package mna

import (
	"symboleq/types"
)

// Circuit 方程生成使用的只读电路视图
type Circuit interface {
	IsGround(name string) bool // 是否为参考地
	NodeList() []*types.Node   // 非地节点，按输出顺序
}

// Term 方程一侧的一项，空字符串表示没有贡献
type Term string

// TermFunc 计算节点上某个元件对方程的贡献
type TermFunc func(c Circuit, node *types.Node, e *types.Element) (lhs, rhs Term)

// NodeVoltageSymbol 节点电压符号，参考地为空（隐含为零）
func NodeVoltageSymbol(c Circuit, name string) Term {
	if c.IsGround(name) {
		return ""
	}
	return Term("V(" + name + ")")
}

// pinVoltageSymbol 元件另一端的节点电压
func pinVoltageSymbol(c Circuit, node *types.Node, e *types.Element) Term {
	return NodeVoltageSymbol(c, e.OtherPin(node.Name))
}

// currentSymbol 二端源的电流符号
// 节点为引脚0时取负，negate 与之异或，用于把项移到等号另一侧
func currentSymbol(node *types.Node, e *types.Element, negate bool, prefix, suffix string) Term {
	sym := prefix + e.Name + suffix
	if (e.PinIndex(node.Name) == 0) != negate {
		return Term("(-" + sym + ")")
	}
	return Term(sym)
}

// impedanceSymbol 无源元件的阻抗
func impedanceSymbol(e *types.Element) string {
	switch e.Type {
	case types.TypeCapacitor:
		return "(1/(j*omega*" + e.Name + "))"
	case types.TypeInductor:
		return "(j*omega*" + e.Name + ")"
	default:
		return e.Name
	}
}

// CurrentTerms KCL 方程中的电流项
// 无源元件的电流在左侧，源的电流在右侧，未知元件以 [unknown] 标记
func CurrentTerms(c Circuit, node *types.Node, e *types.Element) (lhs, rhs Term) {
	switch e.Type {
	case types.TypeResistor, types.TypeCapacitor, types.TypeInductor:
		v := "(" + pinVoltageSymbol(c, node, e) + "-" + NodeVoltageSymbol(c, node.Name) + ")"
		return v + Term("/"+impedanceSymbol(e)), ""
	case types.TypeCurrentSource:
		return "", currentSymbol(node, e, true, "", "")
	case types.TypeVoltageSource:
		return "", currentSymbol(node, e, false, "I(", ")")
	default:
		return types.MarkerUnknown, ""
	}
}

// VoltageTerms 电压源的约束方程
// 只在两种连接下有贡献：
//   - 当前节点是输出端（引脚1）：V(node) [- V(pin0)] = -V(name)
//   - 当前节点是引脚0且输出端接地：V(node) = V(name)
//
// 地线不在节点循环中，第二种情况只能从引脚0一侧得到
func VoltageTerms(c Circuit, node *types.Node, e *types.Element) (lhs, rhs Term) {
	if e.Type != types.TypeVoltageSource || len(e.Pins) != 2 {
		return "", ""
	}
	if node.Name == e.Pins[1] {
		lhs = NodeVoltageSymbol(c, node.Name)
		if !c.IsGround(e.Pins[0]) {
			lhs += " - " + NodeVoltageSymbol(c, e.Pins[0])
		}
		rhs = Term("(-V(" + e.Name + "))")
	}
	if node.Name == e.Pins[0] && c.IsGround(e.Pins[1]) {
		lhs = NodeVoltageSymbol(c, node.Name)
		rhs = Term("V(" + e.Name + ")")
	}
	return lhs, rhs
}
