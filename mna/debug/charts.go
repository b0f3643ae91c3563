package debug

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// 拓扑图颜色
const (
	colorElement = "#c71979b7" // 元件
	colorNode    = "#1987c7b7" // 节点
	colorGround  = "#000000de" // 参考地
)

// Charts 网页拓扑图
type Charts struct {
	*Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 初始化界面
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "电路连接节点网络图",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
	)
	graph.SetSeriesOptions(
		charts.WithEmphasisOpts(opts.Emphasis{
			Label: &opts.Label{
				Show:     opts.Bool(true),
				Color:    "black",
				Position: "left",
			},
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Curveness: 0.3,
		}),
	)
	degree := charts.NewBar()
	degree.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "节点连接数",
			Subtitle: "每个节点连接的元件数量",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	// 处理数据
	{
		graphNodes := make([]opts.GraphNode, 0, len(c.Elements)+len(c.Nodes))
		graphLink := make([]opts.GraphLink, 0)
		for _, e := range c.Elements {
			graphNodes = append(graphNodes, opts.GraphNode{
				Name:      e.Name,
				Category:  0,
				ItemStyle: &opts.ItemStyle{Color: colorElement},
				Tooltip:   &opts.Tooltip{Show: opts.Bool(true)},
			})
		}
		names := make([]string, 0, len(c.Nodes))
		counts := make([]opts.BarData, 0, len(c.Nodes))
		for _, n := range c.Nodes {
			node := opts.GraphNode{
				Name:      nodeLabel(n),
				Category:  1,
				ItemStyle: &opts.ItemStyle{Color: colorNode},
				Tooltip:   &opts.Tooltip{Show: opts.Bool(true)},
			}
			if n.Ground {
				// 参考地
				node.ItemStyle = &opts.ItemStyle{Color: colorGround}
			}
			graphNodes = append(graphNodes, node)
			for _, e := range n.Elements {
				graphLink = append(graphLink, opts.GraphLink{
					Source: e,
					Target: node.Name,
				})
			}
			names = append(names, n.Name)
			counts = append(counts, opts.BarData{Value: len(n.Elements)})
		}
		graph.AddSeries("电路列表", graphNodes, graphLink,
			charts.WithGraphChartOpts(opts.GraphChart{
				Categories: []*opts.GraphCategory{
					{Name: "元件"},
					{Name: "节点"},
				},
				Roam:               opts.Bool(true),
				Force:              &opts.GraphForce{Repulsion: 80},
				FocusNodeAdjacency: opts.Bool(true),
			}))
		degree.SetXAxis(names).AddSeries("元件数", counts)
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		graph,
		degree,
	)
	return page.Render(w)
}

// nodeLabel 节点显示名称，避免与元件同名
func nodeLabel(n NodeRecord) string {
	return "Node(" + n.Name + ")"
}
