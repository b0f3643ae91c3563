package mna

import (
	"strings"

	"symboleq/types"
)

// Equation 方程，两侧按项保存，输出时才拼接
type Equation struct {
	Node    string // 所属节点
	Element string // 逐元件模式下的元件名称
	LHS     []Term // 左侧
	RHS     []Term // 右侧
}

// Add 追加非空项
func (eq *Equation) Add(lhs, rhs Term) {
	if lhs != "" {
		eq.LHS = append(eq.LHS, lhs)
	}
	if rhs != "" {
		eq.RHS = append(eq.RHS, rhs)
	}
}

// Empty 没有任何贡献
func (eq Equation) Empty() bool {
	return len(eq.LHS) == 0 && len(eq.RHS) == 0
}

// Vacuous 是否为 "0 = 0"
func (eq Equation) Vacuous() bool {
	return eq.String() == types.SymbolZero+" = "+types.SymbolZero
}

// String 格式化为 "LHS = RHS"，空的一侧为 0
func (eq Equation) String() string {
	return side(eq.LHS) + " = " + side(eq.RHS)
}

func side(terms []Term) string {
	if len(terms) == 0 {
		return types.SymbolZero
	}
	s := make([]string, len(terms))
	for i, t := range terms {
		s[i] = string(t)
	}
	return strings.Join(s, " + ")
}
