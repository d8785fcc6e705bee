package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFallbackPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want FallbackPolicy
	}{
		{"", FallbackSentinel},
		{"sentinel", FallbackSentinel},
		{"Panic", FallbackPanic},
		{" panic ", FallbackPanic},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFallbackPolicy(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseFallbackPolicy("ignore")
	assert.ErrorIs(t, err, ErrInvalidFallbackPolicy)
}

func TestSetFallbackPolicyReturnsPrevious(t *testing.T) {
	prev := SetFallbackPolicy(FallbackPanic)
	defer SetFallbackPolicy(prev)

	assert.Equal(t, FallbackPanic, CurrentFallbackPolicy())
	assert.Equal(t, FallbackPanic, SetFallbackPolicy(FallbackSentinel))
	assert.Equal(t, FallbackSentinel, CurrentFallbackPolicy())
}

func TestFallbackPolicyString(t *testing.T) {
	assert.Equal(t, "sentinel", FallbackSentinel.String())
	assert.Equal(t, "panic", FallbackPanic.String())
	assert.Equal(t, "FallbackPolicy(7)", FallbackPolicy(7).String())
}
