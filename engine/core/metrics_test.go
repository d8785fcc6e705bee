package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordFallback(t *testing.T) {
	MetricsReset()
	t.Cleanup(MetricsReset)

	MetricsRecordFallback(ErrSingularMatrix)
	MetricsRecordFallback(fmt.Errorf("%w: Vec3 index 9", ErrIndexOutOfRange))
	MetricsRecordFallback(ErrIndexOutOfRange)
	MetricsRecordFallback(ErrConfigClosed)

	got := MetricsFallbacks()
	assert.Equal(t, FallbackMetrics{SingularMatrix: 1, IndexOutOfRange: 2, Other: 1}, got)
	assert.Equal(t, uint64(4), got.Total())

	MetricsReset()
	assert.Zero(t, MetricsFallbacks().Total())
}

func TestClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	c := &Clock{now: func() time.Time { return now }}

	c.Update()
	assert.Zero(t, c.Elapsed(), "update before start")

	c.Start()
	now = base.Add(250 * time.Millisecond)
	c.Update()
	assert.Equal(t, 250*time.Millisecond, c.Elapsed())

	now = base.Add(time.Second)
	c.Stop()
	assert.Equal(t, time.Second, c.Elapsed())

	now = base.Add(time.Hour)
	c.Update()
	assert.Equal(t, time.Second, c.Elapsed(), "stopped clock keeps its last reading")
}
