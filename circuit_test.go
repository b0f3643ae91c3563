package symboleq

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"symboleq/errors"
	"symboleq/format"
	"symboleq/mna"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lowpass = `* RC low pass
V1 0 in AC 1
R1 in out 1k
C1 out 0 1u
.end
`

func TestLoad(t *testing.T) {
	t.Run("文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rc.cir")
		require.NoError(t, os.WriteFile(path, []byte(lowpass), 0o644))
		cir, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "RC low pass", cir.Title)
		assert.Equal(t, []string{"in", "out"}, cir.NodeNames())
		assert.Equal(t, "RC low pass: 3 个元件, 2 个节点, 参考地 0", cir.String())
	})

	t.Run("文件不存在", func(t *testing.T) {
		cir, err := Load(filepath.Join(t.TempDir(), "missing.cir"))
		require.Error(t, err)
		assert.Nil(t, cir)
		assert.True(t, errors.Is(err, errors.ErrInputFile))
	})

	t.Run("没有参考地", func(t *testing.T) {
		_, err := LoadString("title\nR1 a b 1k\n")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNoGround))
	})

	t.Run("自定义参考地", func(t *testing.T) {
		cir, err := LoadString("title\nR1 a vss 1k\n", "vss")
		require.NoError(t, err)
		assert.Equal(t, "vss", cir.GroundName())
	})
}

func TestWriteEquations(t *testing.T) {
	cir, err := LoadString(lowpass)
	require.NoError(t, err)

	want := []string{
		"(V(out)-V(in))/R1 = I(V1)",
		"(V(in)-V(out))/R1 + (-V(out))/(1/(j*omega*C1)) = 0",
		"V(in) = (-V(V1))",
	}
	var buf bytes.Buffer
	require.NoError(t, cir.WriteEquations(&buf, format.ModeDefault))
	assert.Equal(t, strings.Join(want, "\n")+"\n", buf.String())
	assert.Equal(t, want, cir.Equations(format.ModeDefault))

	buf.Reset()
	require.NoError(t, cir.WriteEquations(&buf, format.ModeMaxima, mna.WithWorkers(4)))
	assert.Equal(t, strings.Join([]string{
		"(U[out]-U[in])/R[1] = I[V1]",
		"(U[in]-U[out])/R[1] + (-U[out])/(1/(j*omega*C[1])) = 0",
		"U[in] = (-U[V1])",
	}, "\n")+"\n", buf.String())
}

func TestRecord(t *testing.T) {
	cir, err := LoadString(lowpass)
	require.NoError(t, err)
	list := cir.Record(format.ModeDefault)
	assert.Equal(t, cir.Equations(format.ModeDefault), list.Equations)
	assert.Len(t, list.Nodes, 3)
	assert.Len(t, list.Elements, 3)
}

func TestExport(t *testing.T) {
	cir, err := LoadString(lowpass)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cir.Export(&buf))
	assert.Equal(t, "RC low pass\nV1 0 in AC 1\nR1 in out 1k\nC1 out 0 1u\n.end\n", buf.String())

	again, err := LoadString(buf.String())
	require.NoError(t, err)
	assert.Equal(t, cir.Equations(format.ModeDefault), again.Equations(format.ModeDefault))
}
