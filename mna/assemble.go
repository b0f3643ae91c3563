package mna

import (
	"golang.org/x/sync/errgroup"

	"symboleq/logger"
	"symboleq/types"
)

// Option 方程生成选项
type Option func(*options)

type options struct {
	workers int // 并发生成的节点数
}

// WithWorkers 设置并发数量，小于等于1时顺序生成
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func newOptions(opts []Option) *options {
	o := &options{workers: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Assemble 遍历节点生成方程，按节点顺序交给 emit。
// accumulate 为真时每个节点累加所有元件的贡献得到一个方程（KCL），
// 否则每个元件单独成为一个方程（电压源约束）。"0 = 0" 不会输出。
//
// 顺序生成时调试信息与方程交错；并发生成只保证方程顺序。
func Assemble(c Circuit, fn TermFunc, accumulate bool, emit func(Equation) error, opts ...Option) error {
	o := newOptions(opts)
	nodes := c.NodeList()
	if o.workers <= 1 {
		for _, node := range nodes {
			for _, eq := range assembleNode(c, node, fn, accumulate) {
				if err := emit(eq); err != nil {
					return err
				}
			}
		}
		return nil
	}
	// 节点之间相互独立，结果按下标保存以保持顺序
	results := make([][]Equation, len(nodes))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, node := range nodes {
		g.Go(func() error {
			results[i] = assembleNode(c, node, fn, accumulate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, eqs := range results {
		for _, eq := range eqs {
			if err := emit(eq); err != nil {
				return err
			}
		}
	}
	return nil
}

// Collect 生成并收集全部方程
func Collect(c Circuit, fn TermFunc, accumulate bool, opts ...Option) []Equation {
	var eqs []Equation
	_ = Assemble(c, fn, accumulate, func(eq Equation) error {
		eqs = append(eqs, eq)
		return nil
	}, opts...)
	return eqs
}

// assembleNode 生成一个节点的方程
func assembleNode(c Circuit, node *types.Node, fn TermFunc, accumulate bool) []Equation {
	logger.Debugw("节点", "node", node.Name)
	var eqs []Equation
	acc := Equation{Node: node.Name}
	for _, e := range node.Elements {
		logger.Debugw("元件", "name", e.Name, "pins", e.Pins, "kind", e.Type.String())
		lhs, rhs := fn(c, node, e)
		if !accumulate {
			eq := Equation{Node: node.Name, Element: e.Name}
			eq.Add(lhs, rhs)
			if !eq.Vacuous() {
				eqs = append(eqs, eq)
			}
			continue
		}
		acc.Add(lhs, rhs)
	}
	if !accumulate {
		return eqs
	}
	if acc.Empty() {
		logger.Debugw("节点没有方程", "node", node.Name)
		return nil
	}
	if !acc.Vacuous() {
		eqs = append(eqs, acc)
	}
	return eqs
}
