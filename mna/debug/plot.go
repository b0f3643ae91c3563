package debug

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"symboleq/errors"
)

// Plot 静态拓扑图，节点均匀排列在圆上，元件为节点之间的连线
type Plot struct {
	*Record
	Format string    // svg, png, pdf
	Width  vg.Length // 宽度
	Height vg.Length // 高度
}

// Layout 节点坐标，参考地在最上方，其余节点顺时针排列
func (p *Plot) Layout() map[string]plotter.XY {
	pos := make(map[string]plotter.XY, len(p.Nodes))
	n := float64(len(p.Nodes))
	for i, node := range p.Nodes {
		a := math.Pi/2 - 2*math.Pi*float64(i)/n
		pos[node.Name] = plotter.XY{X: math.Cos(a), Y: math.Sin(a)}
	}
	return pos
}

// Build 创建图
func (p *Plot) Build() (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = p.Title
	plt.HideAxes()
	plt.X.Min, plt.X.Max = -1.4, 1.4
	plt.Y.Min, plt.Y.Max = -1.4, 1.4
	pos := p.Layout()

	// 元件连线，多端元件从引脚中心连到每个引脚
	var labels plotter.XYLabels
	legend := map[string]bool{}
	kinds := map[string]int{}
	for _, e := range p.Elements {
		if _, ok := kinds[e.Kind]; !ok {
			kinds[e.Kind] = len(kinds)
		}
		pts := make(plotter.XYs, 0, len(e.Pins))
		for _, pin := range e.Pins {
			if xy, ok := pos[pin]; ok {
				pts = append(pts, xy)
			}
		}
		if len(pts) == 0 {
			continue
		}
		center := centroid(pts)
		var segments []plotter.XYs
		if len(pts) == 2 {
			segments = append(segments, pts)
		} else {
			for _, xy := range pts {
				segments = append(segments, plotter.XYs{center, xy})
			}
		}
		for _, seg := range segments {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, errors.Wrapf(err, "元件 %s", e.Name)
			}
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = plotutil.Color(kinds[e.Kind])
			plt.Add(line)
			if !legend[e.Kind] {
				legend[e.Kind] = true
				plt.Legend.Add(e.Kind, line)
			}
		}
		labels.XYs = append(labels.XYs, center)
		labels.Labels = append(labels.Labels, e.Name)
	}

	// 节点
	for _, node := range p.Nodes {
		s, err := plotter.NewScatter(plotter.XYs{pos[node.Name]})
		if err != nil {
			return nil, errors.Wrapf(err, "节点 %s", node.Name)
		}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		if node.Ground {
			s.GlyphStyle.Shape = draw.SquareGlyph{}
			s.GlyphStyle.Color = color.Black
		}
		plt.Add(s)
		labels.XYs = append(labels.XYs, pos[node.Name])
		labels.Labels = append(labels.Labels, node.Name)
	}
	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, errors.Wrap(err, "标签")
		}
		plt.Add(l)
	}
	plt.Legend.Top = true
	return plt, nil
}

// Render 按 Format 输出
func (p *Plot) Render(w io.Writer) error {
	plt, err := p.Build()
	if err != nil {
		return err
	}
	width, height := p.Width, p.Height
	if width == 0 {
		width = 6 * vg.Inch
	}
	if height == 0 {
		height = width
	}
	wt, err := plt.WriterTo(width, height, p.Format)
	if err != nil {
		return errors.Wrapf(err, "图片格式 %s", p.Format)
	}
	_, err = wt.WriteTo(w)
	return err
}

// centroid 坐标中心
func centroid(pts plotter.XYs) plotter.XY {
	var c plotter.XY
	for _, xy := range pts {
		c.X += xy.X
		c.Y += xy.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	return c
}
