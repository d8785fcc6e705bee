package core

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// FallbackPolicy decides what the math types do when an operation hits a
// degenerate input, such as inverting a singular matrix or reading a vector
// component past its dimension.
type FallbackPolicy int32

const (
	// FallbackSentinel returns a well-defined stand-in value (identity
	// matrix, clamped component) and logs the event at debug level.
	FallbackSentinel FallbackPolicy = iota
	// FallbackPanic panics with an error wrapping the matching sentinel.
	FallbackPanic
)

var fallbackPolicy atomic.Int32

func (p FallbackPolicy) String() string {
	switch p {
	case FallbackSentinel:
		return "sentinel"
	case FallbackPanic:
		return "panic"
	default:
		return fmt.Sprintf("FallbackPolicy(%d)", int32(p))
	}
}

// ParseFallbackPolicy maps a config value onto a FallbackPolicy.
// An empty string selects FallbackSentinel.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sentinel":
		return FallbackSentinel, nil
	case "panic":
		return FallbackPanic, nil
	default:
		return FallbackSentinel, fmt.Errorf("%w: %q", ErrInvalidFallbackPolicy, s)
	}
}

// SetFallbackPolicy switches the process-wide policy and returns the
// previous one.
func SetFallbackPolicy(p FallbackPolicy) FallbackPolicy {
	return FallbackPolicy(fallbackPolicy.Swap(int32(p)))
}

func CurrentFallbackPolicy() FallbackPolicy {
	return FallbackPolicy(fallbackPolicy.Load())
}
