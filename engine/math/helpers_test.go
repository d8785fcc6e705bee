package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/engineutils/engine/core"
)

const tol float32 = 1e-5

// withPolicy switches the fallback policy for the duration of the test.
// Tests that call it must not run in parallel.
func withPolicy(t *testing.T, p core.FallbackPolicy) {
	t.Helper()
	prev := core.SetFallbackPolicy(p)
	t.Cleanup(func() { core.SetFallbackPolicy(prev) })
}

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
}

func requireVec3(t *testing.T, want, got Vec3, tolerance float32) {
	t.Helper()
	require.True(t, want.Compare(got, tolerance), "want %s, got %s", want, got)
}

func requireMat4(t *testing.T, want, got Mat4, tolerance float32) {
	t.Helper()
	require.True(t, want.Compare(got, tolerance), "want\n%s\ngot\n%s", want, got)
}
