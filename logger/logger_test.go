package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	t.Run("调试模式写入结果流", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&buf, true)
		defer Initialize(&buf, false)

		Debugw("节点", "name", "n1")
		Cleanup()
		assert.True(t, DebugOutput)
		assert.Contains(t, buf.String(), "节点")
		assert.Contains(t, buf.String(), "n1")
	})

	t.Run("非调试模式不写入结果流", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&buf, false)

		Debugw("节点", "name", "n1")
		Cleanup()
		assert.False(t, DebugOutput)
		assert.Empty(t, buf.String())
	})
}
