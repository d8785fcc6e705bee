package math

import (
	"fmt"

	"github.com/spaghettifunk/engineutils/engine/core"
)

// fallback resolves a degenerate operation according to the process-wide
// policy: it either returns value after logging, or panics with an error
// wrapping cause.
func fallback[T any](cause error, value T, format string, args ...interface{}) T {
	detail := fmt.Sprintf(format, args...)
	core.MetricsRecordFallback(cause)
	if core.CurrentFallbackPolicy() == core.FallbackPanic {
		panic(fmt.Errorf("%w: %s", cause, detail))
	}
	core.LogDebug("%s: %s, using fallback value", cause, detail)
	return value
}

// componentIndex maps i onto [0, n). Out-of-range indices resolve to the
// last component under the sentinel policy.
func componentIndex(i, n int, kind string) int {
	if i >= 0 && i < n {
		return i
	}
	return fallback(core.ErrIndexOutOfRange, n-1, "%s index %d", kind, i)
}
