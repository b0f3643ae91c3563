package graph

import (
	"strings"

	"symboleq/errors"
	"symboleq/logger"
	"symboleq/types"
)

// Graph 连接处理
// 创建后只读，参考地不在 Nodes 中
type Graph struct {
	Title    string                 // 标题
	Ground   *types.Node            // 参考地
	Nodes    []*types.Node          // 非地节点，按首次出现的顺序
	Elements []*types.Element       // 元件列表
	nodeMap  map[string]*types.Node // 节点索引
}

// NewGraph 创建图
// groundNames 为空时使用 types.DefaultGroundNames，比较不区分大小写
func NewGraph(netlist *types.Netlist, groundNames ...string) (graph *Graph, err error) {
	if len(groundNames) == 0 {
		groundNames = types.DefaultGroundNames
	}
	graph = &Graph{
		Title:    netlist.Title,
		Elements: netlist.Elements,
		nodeMap:  map[string]*types.Node{},
	}
	err = graph.Init(groundNames)
	return graph, err
}

// Init 初始化
func (graph *Graph) Init(groundNames []string) error {
	isGround := func(name string) bool {
		for _, g := range groundNames {
			if strings.EqualFold(g, name) {
				return true
			}
		}
		return false
	}
	for _, e := range graph.Elements {
		for _, pin := range e.Pins {
			node, ok := graph.nodeMap[pin]
			if !ok {
				node = &types.Node{Name: pin, IsGround: isGround(pin)}
				graph.nodeMap[pin] = node
				// 地线不参与 KCL 方程
				if node.IsGround {
					if graph.Ground != nil {
						logger.Warnw("存在多个地线名称，合并为同一参考地", "ground", graph.Ground.Name, "alias", pin)
						graph.nodeMap[pin] = graph.Ground
						node = graph.Ground
					} else {
						graph.Ground = node
					}
				} else {
					graph.Nodes = append(graph.Nodes, node)
				}
			}
			node.AddElement(e)
		}
	}
	if graph.Ground == nil {
		return errors.WithHintf(errors.Wrapf(errors.ErrNoGround, "地线名称 %v", groundNames),
			"使用节点 %s 作为参考地", groundNames[0])
	}
	logger.Debugw("参考地节点", "ground", graph.Ground.Name)
	logger.Debugw("节点列表", "list", graph.NodeNames())
	return nil
}

// GroundName 参考地名称
func (graph *Graph) GroundName() string {
	if graph.Ground == nil {
		return ""
	}
	return graph.Ground.Name
}

// IsGround 是否为参考地（包括地线别名）
func (graph *Graph) IsGround(name string) bool {
	node, ok := graph.nodeMap[name]
	return ok && node.IsGround
}

// NodeList 非地节点列表
func (graph *Graph) NodeList() []*types.Node {
	return graph.Nodes
}

// Node 按名称查找节点
func (graph *Graph) Node(name string) (*types.Node, bool) {
	node, ok := graph.nodeMap[name]
	return node, ok
}

// NodeNames 非地节点名称
func (graph *Graph) NodeNames() []string {
	names := make([]string, len(graph.Nodes))
	for i, n := range graph.Nodes {
		names[i] = n.Name
	}
	return names
}
