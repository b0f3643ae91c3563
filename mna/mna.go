package mna

// MNA (Modified Nodal Analysis) 符号方程生成器。
// 对每个非地节点生成 KCL 方程，再对每个独立电压源生成约束方程。
type MNA struct {
	Circuit Circuit  // 只读电路视图
	opts    []Option // 生成选项
}

// System 方程组
type System struct {
	KCL         []Equation // 每个非地节点一个
	Constraints []Equation // 电压源约束
}

// Equations 按输出顺序返回全部方程：先 KCL，后约束。
func (s System) Equations() []Equation {
	eqs := make([]Equation, 0, len(s.KCL)+len(s.Constraints))
	eqs = append(eqs, s.KCL...)
	return append(eqs, s.Constraints...)
}

// NewMNA 创建方程生成器。
func NewMNA(c Circuit, opts ...Option) *MNA {
	return &MNA{Circuit: c, opts: opts}
}

// Walk 按输出顺序生成方程并交给 emit，emit 出错时立即返回。
func (m *MNA) Walk(emit func(Equation) error) error {
	// 每个节点的 KCL 方程：R, I, C, L
	if err := Assemble(m.Circuit, CurrentTerms, true, emit, m.opts...); err != nil {
		return err
	}
	// 每个电压源的附加约束方程
	return Assemble(m.Circuit, VoltageTerms, false, emit, m.opts...)
}

// Generate 生成完整方程组。
func (m *MNA) Generate() System {
	return System{
		KCL:         Collect(m.Circuit, CurrentTerms, true, m.opts...),
		Constraints: Collect(m.Circuit, VoltageTerms, false, m.opts...),
	}
}
