package math

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/engineutils/engine/core"
)

func TestFallbackSentinelLogsAtDebug(t *testing.T) {
	withPolicy(t, core.FallbackSentinel)

	var buf bytes.Buffer
	prevLevel := core.LogLevel()
	require.NoError(t, core.ConfigureLogger(core.LogOptions{Level: "debug", Output: &buf}))
	t.Cleanup(func() {
		_ = core.ConfigureLogger(core.LogOptions{Level: prevLevel, Output: os.Stderr})
	})

	before := core.MetricsFallbacks()
	got := NewMat3Zero().Inverse()
	assert.Equal(t, NewMat3Identity(), got)
	assert.Equal(t, before.SingularMatrix+1, core.MetricsFallbacks().SingularMatrix)
	assert.Contains(t, buf.String(), core.ErrSingularMatrix.Error())

	buf.Reset()
	_ = NewVec3One().At(3)
	assert.Contains(t, buf.String(), "Vec3 index 3")
}

func TestFallbackPanicWrapsCause(t *testing.T) {
	withPolicy(t, core.FallbackPanic)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), "Mat4 column 4")
	}()
	NewMat4Identity().At(0, 4)
}
