package debug

import (
	"encoding/json"
	"io"

	"symboleq/graph"
	"symboleq/types"
)

// Record 电路拓扑与生成的方程
type Record struct {
	Title     string          `json:"title"`               // 标题
	Nodes     []NodeRecord    `json:"nodes"`               // 节点列表，第一个为参考地
	Elements  []ElementRecord `json:"elements"`            // 元件列表
	Equations []string        `json:"equations,omitempty"` // 方程
}

// NodeRecord 节点连接信息
type NodeRecord struct {
	Name     string   `json:"name"`
	Ground   bool     `json:"ground,omitempty"`
	Elements []string `json:"elements"` // 连接的元件名称
}

// ElementRecord 元件信息
type ElementRecord struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Pins  []string `json:"pins"`
	Value string   `json:"value,omitempty"`
}

// NewRecord 从电路图创建记录
func NewRecord(g *graph.Graph, equations []string) *Record {
	list := &Record{Title: g.Title, Equations: equations}
	if g.Ground != nil {
		list.Nodes = append(list.Nodes, nodeRecord(g.Ground.Name, true, g.Ground.Elements))
	}
	for _, n := range g.NodeList() {
		list.Nodes = append(list.Nodes, nodeRecord(n.Name, false, n.Elements))
	}
	for _, e := range g.Elements {
		list.Elements = append(list.Elements, ElementRecord{
			Name:  e.Name,
			Kind:  e.Type.String(),
			Pins:  append([]string(nil), e.Pins...),
			Value: e.Value,
		})
	}
	return list
}

// nodeRecord 节点连接信息
func nodeRecord(name string, ground bool, elements []*types.Element) NodeRecord {
	names := make([]string, len(elements))
	for i, e := range elements {
		names[i] = e.Name
	}
	return NodeRecord{Name: name, Ground: ground, Elements: names}
}

// Render 输出 JSON
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
