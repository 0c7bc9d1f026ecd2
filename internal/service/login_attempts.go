package service

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultMaxLoginFailures   = 5
	DefaultLoginFailureWindow = 15 * time.Minute
)

type failureWindow struct {
	count int
	first time.Time
}

// LoginAttemptTracker counts failed logins per username in memory. Once a
// username reaches the limit inside the window, further logins are refused
// until the window that started with the first failure has passed.
type LoginAttemptTracker struct {
	mu       sync.Mutex
	failures map[string]*failureWindow
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewLoginAttemptTracker(limit int, window time.Duration) *LoginAttemptTracker {
	return &LoginAttemptTracker{
		failures: make(map[string]*failureWindow),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Locked reports whether username is currently locked out.
func (t *LoginAttemptTracker) Locked(username string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.failures[username]
	if !ok {
		return false
	}
	if t.expired(w) {
		delete(t.failures, username)
		return false
	}
	return w.count >= t.limit
}

// Fail records a failed login for username.
func (t *LoginAttemptTracker) Fail(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.failures[username]
	if !ok || t.expired(w) {
		t.failures[username] = &failureWindow{count: 1, first: t.now()}
		return
	}
	w.count++
}

// Reset forgets all failures for username.
func (t *LoginAttemptTracker) Reset(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.failures, username)
}

// Sweep drops expired windows. It matches the worker job signature.
func (t *LoginAttemptTracker) Sweep(_ context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for username, w := range t.failures {
		if t.expired(w) {
			delete(t.failures, username)
		}
	}
}

func (t *LoginAttemptTracker) expired(w *failureWindow) bool {
	return !t.now().Before(w.first.Add(t.window))
}
