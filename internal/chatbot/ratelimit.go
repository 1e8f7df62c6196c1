package chatbot

import (
	"sync"
	"time"
)

// rateWindow tracks how many sends a session has made in the current window.
type rateWindow struct {
	Count       int
	WindowStart time.Time
}

// Limiter bounds how many messages a session may send per window. A limit of
// zero (or less) disables limiting entirely; the unconfigured widget was
// unlimited and stays that way.
type Limiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	now      func() time.Time
	sessions map[string]*rateWindow
}

// NewLimiter creates a limiter with a 60-second window.
func NewLimiter(limit int) *Limiter {
	return &Limiter{
		limit:    limit,
		window:   60 * time.Second,
		now:      time.Now,
		sessions: make(map[string]*rateWindow),
	}
}

// Allow reports whether the session may send another message, incrementing
// its counter when it may. The counter resets once the window has elapsed.
func (l *Limiter) Allow(sessionID string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.sessions[sessionID]
	if !ok || now.Sub(w.WindowStart) >= l.window {
		l.sessions[sessionID] = &rateWindow{Count: 1, WindowStart: now}
		return true
	}

	if w.Count >= l.limit {
		return false
	}
	w.Count++
	return true
}

// WindowStart returns when the session's current window began. Zero time when
// the session has no window yet.
func (l *Limiter) WindowStart(sessionID string) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.sessions[sessionID]; ok {
		return w.WindowStart
	}
	return time.Time{}
}
