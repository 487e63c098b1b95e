package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 1)

	require.True(t, tb.Allow())
	require.True(t, tb.Allow())
	require.True(t, tb.Allow())
	// 桶空后立刻拒绝
	require.False(t, tb.Allow())
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(2, 5)
	tb.tokens = 0

	// 回拨上次补充时间，模拟一秒流逝
	tb.lastRefill = tb.lastRefill.Add(-1100 * time.Millisecond)

	require.True(t, tb.Allow())
}

func TestTokenBucketNeverExceedsCapacity(t *testing.T) {
	tb := NewTokenBucket(2, 100)
	tb.lastRefill = tb.lastRefill.Add(-10 * time.Second)

	require.True(t, tb.Allow())
	require.True(t, tb.Allow())
	require.False(t, tb.Allow())
}
