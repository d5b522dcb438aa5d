package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowLimiterEnforcesLimitWithinWindow(t *testing.T) {
	limiter := NewWindowLimiter()
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("reservation:create:203.0.113.9", 3, time.Minute, base.Add(time.Duration(i)*time.Second)))
	}
	assert.False(t, limiter.Allow("reservation:create:203.0.113.9", 3, time.Minute, base.Add(10*time.Second)))
	assert.False(t, limiter.Allow("reservation:create:203.0.113.9", 3, time.Minute, base.Add(59*time.Second)))
}

func TestWindowLimiterResetsAfterWindowElapses(t *testing.T) {
	limiter := NewWindowLimiter()
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		limiter.Allow("k", 3, time.Minute, base)
	}
	assert.False(t, limiter.Allow("k", 3, time.Minute, base.Add(30*time.Second)))

	// Just past the window the counter starts over.
	assert.True(t, limiter.Allow("k", 3, time.Minute, base.Add(61*time.Second)))
	assert.True(t, limiter.Allow("k", 3, time.Minute, base.Add(62*time.Second)))
}

func TestWindowLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewWindowLimiter()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		limiter.Allow("reservation:create:a", 3, time.Minute, now)
	}
	assert.False(t, limiter.Allow("reservation:create:a", 3, time.Minute, now))
	assert.True(t, limiter.Allow("reservation:create:b", 3, time.Minute, now))
}

func TestWindowLimiterDecisionIsPure(t *testing.T) {
	// Same inputs against fresh state always yield the same verdicts, with no
	// dependence on the wall clock.
	run := func() []bool {
		limiter := NewWindowLimiter()
		base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		var verdicts []bool
		for i := 0; i < 5; i++ {
			verdicts = append(verdicts, limiter.Allow("k", 2, time.Minute, base.Add(time.Duration(i)*time.Second)))
		}
		return verdicts
	}
	assert.Equal(t, run(), run())
	assert.Equal(t, []bool{true, true, false, false, false}, run())
}

func TestWindowLimiterManyKeys(t *testing.T) {
	limiter := NewWindowLimiter()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("reservation:create:198.51.100.%d", i)
		assert.True(t, limiter.Allow(key, 1, time.Minute, now))
		assert.False(t, limiter.Allow(key, 1, time.Minute, now))
	}
}
