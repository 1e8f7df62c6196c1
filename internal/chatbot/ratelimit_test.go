package chatbot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeClock(start time.Time) (*time.Time, func() time.Time) {
	now := start
	return &now, func() time.Time { return now }
}

func TestLimiterAllowsUpToLimit(t *testing.T) {
	_, clock := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l := NewLimiter(3)
	l.now = clock

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("s1"), "message %d should be allowed", i+1)
	}
	assert.False(t, l.Allow("s1"), "message over the limit should be denied")
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	now, clock := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l := NewLimiter(2)
	l.now = clock

	assert.True(t, l.Allow("s1"))
	assert.True(t, l.Allow("s1"))
	assert.False(t, l.Allow("s1"))

	// 59s in: still the same window
	*now = now.Add(59 * time.Second)
	assert.False(t, l.Allow("s1"))

	// 60s from the window start: fresh window
	*now = now.Add(1 * time.Second)
	assert.True(t, l.Allow("s1"))
}

func TestLimiterSessionsAreIndependent(t *testing.T) {
	_, clock := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l := NewLimiter(1)
	l.now = clock

	assert.True(t, l.Allow("s1"))
	assert.False(t, l.Allow("s1"))
	assert.True(t, l.Allow("s2"))
}

func TestLimiterZeroLimitIsUnlimited(t *testing.T) {
	l := NewLimiter(0)
	for i := 0; i < 1000; i++ {
		assert.True(t, l.Allow("s1"))
	}

	neg := NewLimiter(-5)
	assert.True(t, neg.Allow("s1"))
}

func TestLimiterWindowStart(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, clock := fakeClock(start)
	l := NewLimiter(2)
	l.now = clock

	assert.True(t, l.WindowStart("s1").IsZero())
	l.Allow("s1")
	assert.Equal(t, start, l.WindowStart("s1"))
}
