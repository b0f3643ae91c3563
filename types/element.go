package types

// Element 元件信息
// 引脚顺序在解析时确定，之后不再修改，符号的正负依赖它
type Element struct {
	Name  string      // 元件名称，同时作为元件值的符号
	Type  ElementType // 元件类型
	Pins  []string    // 引脚连接的节点名称
	Value string      // 网表中的原始值
	Line  int         // 行号
}

// PinIndex 节点在引脚列表中的位置，不存在返回-1
func (e *Element) PinIndex(node string) int {
	for i, pin := range e.Pins {
		if pin == node {
			return i
		}
	}
	return -1
}

// OtherPin 二端元件另一端的节点名称
func (e *Element) OtherPin(node string) string {
	if len(e.Pins) != 2 {
		return ""
	}
	if e.PinIndex(node) == 0 {
		return e.Pins[1]
	}
	return e.Pins[0]
}

// Node 电路节点
type Node struct {
	Name     string     // 节点名称
	Elements []*Element // 连接的元件，按网表顺序
	IsGround bool       // 参考地
}

// AddElement 添加连接的元件，同一元件只记录一次
func (n *Node) AddElement(e *Element) {
	for _, el := range n.Elements {
		if el == e {
			return
		}
	}
	n.Elements = append(n.Elements, e)
}

// Netlist 网表解析结果
type Netlist struct {
	Title    string     // 标题
	Elements []*Element // 元件列表
}
