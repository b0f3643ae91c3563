// Package symboleq 由 SPICE 网表生成改进节点分析（MNA）的符号方程。
//
//	cir, err := symboleq.Load("rc.cir")
//	if err != nil {
//	    return err
//	}
//	return cir.WriteEquations(os.Stdout, format.ModeMaxima)
package symboleq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"symboleq/format"
	"symboleq/graph"
	"symboleq/load"
	"symboleq/mna"
	"symboleq/mna/debug"
	"symboleq/types"
)

// Circuit 电路
type Circuit struct {
	*graph.Graph
}

// New 从网表创建电路，groundNames 为空时使用 0 和 gnd
func New(netlist *types.Netlist, groundNames ...string) (*Circuit, error) {
	g, err := graph.NewGraph(netlist, groundNames...)
	if err != nil {
		return nil, err
	}
	return &Circuit{Graph: g}, nil
}

// Load 加载网表文件
func Load(filename string, groundNames ...string) (*Circuit, error) {
	netlist, err := load.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return New(netlist, groundNames...)
}

// LoadString 加载网表字符串
func LoadString(s string, groundNames ...string) (*Circuit, error) {
	netlist, err := load.LoadString(s)
	if err != nil {
		return nil, err
	}
	return New(netlist, groundNames...)
}

// MNA 得到方程生成器
func (cir *Circuit) MNA(opts ...mna.Option) *mna.MNA {
	return mna.NewMNA(cir.Graph, opts...)
}

// Equations 按记法生成全部方程
func (cir *Circuit) Equations(mode format.Mode, opts ...mna.Option) []string {
	f := format.NewFormatter(mode)
	var list []string
	for _, eq := range cir.MNA(opts...).Generate().Equations() {
		list = append(list, f.Render(eq.String()))
	}
	return list
}

// WriteEquations 每行输出一个方程
// 不做缓冲，调试日志写入同一输出时与方程交错
func (cir *Circuit) WriteEquations(w io.Writer, mode format.Mode, opts ...mna.Option) error {
	f := format.NewFormatter(mode)
	return cir.MNA(opts...).Walk(func(eq mna.Equation) error {
		_, err := fmt.Fprintln(w, f.Render(eq.String()))
		return err
	})
}

// Record 拓扑记录，附带生成的方程
func (cir *Circuit) Record(mode format.Mode, opts ...mna.Option) *debug.Record {
	return debug.NewRecord(cir.Graph, cir.Equations(mode, opts...))
}

// Export 导出规范化的 netlist 格式数据
func (cir *Circuit) Export(w io.Writer) error {
	writer := bufio.NewWriter(w)
	writer.WriteString(cir.Title)
	writer.WriteRune('\n')
	// 导出组件
	for _, e := range cir.Elements {
		writer.WriteString(e.Name)
		for _, pin := range e.Pins {
			writer.WriteRune(' ')
			writer.WriteString(pin)
		}
		if e.Value != "" {
			writer.WriteRune(' ')
			writer.WriteString(e.Value)
		}
		writer.WriteRune('\n')
	}
	writer.WriteString(".end\n")
	return writer.Flush()
}

// String 电路摘要
func (cir *Circuit) String() string {
	return fmt.Sprintf("%s: %d 个元件, %d 个节点, 参考地 %s",
		strings.TrimSpace(cir.Title), len(cir.Elements), len(cir.Nodes), cir.GroundName())
}
