package middleware

import (
	"sync"
	"time"
)

type window struct {
	count       int
	windowStart time.Time
}

// WindowLimiter is a fixed-window counter keyed by (identity, action). State
// is in-memory and per-process: a soft abuse deterrent, not a security
// boundary.
type WindowLimiter struct {
	mu      sync.Mutex
	windows map[string]window
}

func NewWindowLimiter() *WindowLimiter {
	return &WindowLimiter{windows: make(map[string]window)}
}

// Allow reports whether the attempt identified by key fits within limit
// calls per window. The current time is a parameter so decisions are
// testable without real timers.
func (l *WindowLimiter) Allow(key string, limit int, windowSize time.Duration, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.windowStart) > windowSize {
		l.windows[key] = window{count: 1, windowStart: now}
		return true
	}

	w.count++
	l.windows[key] = w
	return w.count <= limit
}
