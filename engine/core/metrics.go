package core

import (
	"errors"
	"sync/atomic"
)

// FallbackMetrics counts how many degenerate operations were resolved with a
// fallback value since start-up or the last MetricsReset.
type FallbackMetrics struct {
	SingularMatrix  uint64
	IndexOutOfRange uint64
	Other           uint64
}

func (fm FallbackMetrics) Total() uint64 {
	return fm.SingularMatrix + fm.IndexOutOfRange + fm.Other
}

var (
	singularCount atomic.Uint64
	indexCount    atomic.Uint64
	otherCount    atomic.Uint64
)

// MetricsRecordFallback files one fallback under the sentinel cause wraps.
func MetricsRecordFallback(cause error) {
	switch {
	case errors.Is(cause, ErrSingularMatrix):
		singularCount.Add(1)
	case errors.Is(cause, ErrIndexOutOfRange):
		indexCount.Add(1)
	default:
		otherCount.Add(1)
	}
}

func MetricsFallbacks() FallbackMetrics {
	return FallbackMetrics{
		SingularMatrix:  singularCount.Load(),
		IndexOutOfRange: indexCount.Load(),
		Other:           otherCount.Load(),
	}
}

func MetricsReset() {
	singularCount.Store(0)
	indexCount.Store(0)
	otherCount.Store(0)
}
