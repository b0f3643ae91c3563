package debug

import (
	"bytes"
	"encoding/json"
	"testing"

	"symboleq/graph"
	"symboleq/load"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const divider = `divider
V1 0 in 5
R1 in out 1k
R2 out 0 1k
Q1 out in 0 npn
`

func newRecord(t *testing.T) *Record {
	t.Helper()
	nl, err := load.LoadString(divider)
	require.NoError(t, err)
	g, err := graph.NewGraph(nl)
	require.NoError(t, err)
	return NewRecord(g, []string{"(V(out)-V(in))/R1 = I(V1)"})
}

func TestRecord(t *testing.T) {
	list := newRecord(t)
	assert.Equal(t, "divider", list.Title)

	require.Len(t, list.Nodes, 3)
	assert.Equal(t, NodeRecord{Name: "0", Ground: true, Elements: []string{"V1", "R2", "Q1"}}, list.Nodes[0])
	assert.Equal(t, NodeRecord{Name: "in", Elements: []string{"V1", "R1", "Q1"}}, list.Nodes[1])
	assert.Equal(t, NodeRecord{Name: "out", Elements: []string{"R1", "R2", "Q1"}}, list.Nodes[2])

	require.Len(t, list.Elements, 4)
	assert.Equal(t, ElementRecord{Name: "R1", Kind: "Resistor", Pins: []string{"in", "out"}, Value: "1k"}, list.Elements[1])
	assert.Equal(t, "Unknown", list.Elements[3].Kind)

	var buf bytes.Buffer
	require.NoError(t, list.Render(&buf))
	var decoded Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *list, decoded)
}

func TestCharts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Charts{Record: newRecord(t)}).Render(&buf))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Node(out)")
	assert.Contains(t, html, "R2")
	assert.Contains(t, html, colorElement, "元件颜色")
	assert.Contains(t, html, colorNode, "节点颜色")
	assert.Contains(t, html, colorGround, "参考地颜色")
}

func TestPlot(t *testing.T) {
	list := newRecord(t)

	t.Run("布局", func(t *testing.T) {
		pos := (&Plot{Record: list}).Layout()
		require.Len(t, pos, 3)
		assert.InDelta(t, 0, pos["0"].X, 1e-9)
		assert.InDelta(t, 1, pos["0"].Y, 1e-9)
	})

	tests := []struct {
		format string
		marker string
	}{
		{"svg", "<svg"},
		{"png", "\x89PNG"},
		{"pdf", "%PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, (&Plot{Record: list, Format: tt.format}).Render(&buf))
			assert.True(t, bytes.Contains(buf.Bytes(), []byte(tt.marker)), "%s 输出格式不正确", tt.format)
		})
	}
}

func TestNewRenderer(t *testing.T) {
	list := newRecord(t)
	for _, f := range Formats {
		r, err := NewRenderer(list, f)
		require.NoError(t, err, f)
		assert.NotNil(t, r)
	}
	_, err := NewRenderer(list, "bmp")
	assert.Error(t, err)

	assert.Equal(t, "svg", FormatOf("out/topology.SVG"))
	assert.Equal(t, "", FormatOf("topology"))
}
