package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symboleq/errors"
	"symboleq/logger"
	"symboleq/mna/debug"
)

const netlist = `divider
V1 0 in 5
R1 in out 1k
R2 out 0 1k
`

// writeNetlist 写入临时网表文件
func writeNetlist(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "divider.cir")
	require.NoError(t, os.WriteFile(path, []byte(netlist), 0o644))
	return path
}

// run 执行命令并返回标准输出
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runStreams(t, args...)
	return out, err
}

// runStreams 执行命令，分别返回标准输出和标准错误
func runStreams(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logger.Initialize(nil, false) })
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot(t *testing.T) {
	path := writeNetlist(t)

	t.Run("默认格式", func(t *testing.T) {
		out, err := run(t, path)
		require.NoError(t, err)
		assert.Equal(t, `(V(out)-V(in))/R1 = I(V1)
(V(in)-V(out))/R1 + (-V(out))/R2 = 0
V(in) = (-V(V1))
`, out)
	})

	t.Run("maxima", func(t *testing.T) {
		out, err := run(t, path, "-f", "maxima", "--workers", "2")
		require.NoError(t, err)
		assert.Equal(t, `(U[out]-U[in])/R[1] = I[V1]
(U[in]-U[out])/R[1] + (-U[out])/R[2] = 0
U[in] = (-U[V1])
`, out)
	})

	t.Run("调试信息与方程交错", func(t *testing.T) {
		out, err := run(t, path, "--debug")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		first := indexOf(lines, "(V(out)-V(in))/R1 = I(V1)")
		second := indexOf(lines, "(V(in)-V(out))/R1 + (-V(out))/R2 = 0")
		require.Positive(t, first)
		require.Greater(t, second, first)
		assert.Contains(t, strings.Join(lines[first+1:second], "\n"), "DEBUG", "第二个节点的调试信息应在两个方程之间")
		assert.Contains(t, out, "参考地节点")
	})

	t.Run("未知格式", func(t *testing.T) {
		_, err := run(t, path, "-f", "latex")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})

	t.Run("文件不存在", func(t *testing.T) {
		out, err := run(t, filepath.Join(t.TempDir(), "missing.cir"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInputFile))
		assert.Empty(t, out, "不应输出任何方程")
	})

	t.Run("缺少文件参数", func(t *testing.T) {
		_, err := run(t)
		assert.Error(t, err)
	})
}

func TestConfig(t *testing.T) {
	writeNetlist(t)
	require.NoError(t, os.WriteFile("symboleq.toml", []byte("format = \"maxima\"\n"), 0o644))

	out, err := run(t, "config", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "maxima")
	assert.Contains(t, out, "workers = 3")

	out, err = run(t, "config", "-o", "yaml", "-f", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "format: default")

	out, _, err = runStreams(t, "config", "-o", "json", "-d")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), "调试信息不应写入配置输出")
	assert.Equal(t, true, decoded["debug"])
}

func TestDiagram(t *testing.T) {
	path := writeNetlist(t)

	t.Run("标准输出", func(t *testing.T) {
		out, err := run(t, "diagram", path)
		require.NoError(t, err)
		var list debug.Record
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		assert.Equal(t, "divider", list.Title)
		assert.Len(t, list.Equations, 3)
	})

	t.Run("调试信息写到标准错误", func(t *testing.T) {
		out, errOut, err := runStreams(t, "diagram", path, "-d")
		require.NoError(t, err)
		var list debug.Record
		require.NoError(t, json.Unmarshal([]byte(out), &list), "标准输出应为完整的 JSON")
		assert.Len(t, list.Equations, 3)
		assert.Contains(t, errOut, "DEBUG")
		assert.Contains(t, errOut, "参考地节点")
	})

	t.Run("输出文件时调试信息写到标准输出", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "topology.json")
		out, _, err := runStreams(t, "diagram", path, "-d", "-o", output)
		require.NoError(t, err)
		assert.Contains(t, out, "DEBUG")
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		var list debug.Record
		require.NoError(t, json.Unmarshal(data, &list))
	})

	for _, name := range []string{"topology.svg", "topology.html", "topology.json"} {
		t.Run(name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), name)
			_, err := run(t, "diagram", path, "-o", output)
			require.NoError(t, err)
			info, err := os.Stat(output)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	t.Run("不支持的格式", func(t *testing.T) {
		_, err := run(t, "diagram", path, "-o", filepath.Join(t.TempDir(), "topology.bmp"))
		require.Error(t, err)
		assert.NotEmpty(t, errors.GetAllHints(err))
	})
}

func TestPrintError(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	printError(&buf, errors.WithHint(errors.New("网表解析失败"), "检查第一行"))
	assert.Contains(t, buf.String(), "网表解析失败")
	assert.Contains(t, buf.String(), "检查第一行")
}

func indexOf(lines []string, s string) int {
	for i, l := range lines {
		if l == s {
			return i
		}
	}
	return -1
}
