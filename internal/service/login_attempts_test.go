package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(limit int, window time.Duration) (*LoginAttemptTracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tracker := NewLoginAttemptTracker(limit, window)
	tracker.now = clock.Now
	return tracker, clock
}

func TestLoginAttemptTracker_LocksAfterLimit(t *testing.T) {
	tracker, _ := newTestTracker(3, time.Minute)

	for i := 0; i < 2; i++ {
		tracker.Fail("alice")
		assert.False(t, tracker.Locked("alice"), "attempt %d", i+1)
	}

	tracker.Fail("alice")
	assert.True(t, tracker.Locked("alice"))
	assert.False(t, tracker.Locked("bob"), "other usernames are unaffected")
}

func TestLoginAttemptTracker_UnlocksAfterWindow(t *testing.T) {
	tracker, clock := newTestTracker(2, time.Minute)

	tracker.Fail("alice")
	tracker.Fail("alice")
	assert.True(t, tracker.Locked("alice"))

	clock.Advance(time.Minute)

	assert.False(t, tracker.Locked("alice"))
}

func TestLoginAttemptTracker_FailAfterWindowStartsOver(t *testing.T) {
	tracker, clock := newTestTracker(2, time.Minute)

	tracker.Fail("alice")
	clock.Advance(2 * time.Minute)
	tracker.Fail("alice")

	assert.False(t, tracker.Locked("alice"))
}

func TestLoginAttemptTracker_Reset(t *testing.T) {
	tracker, _ := newTestTracker(1, time.Minute)

	tracker.Fail("alice")
	assert.True(t, tracker.Locked("alice"))

	tracker.Reset("alice")

	assert.False(t, tracker.Locked("alice"))
}

func TestLoginAttemptTracker_Sweep(t *testing.T) {
	tracker, clock := newTestTracker(5, time.Minute)

	tracker.Fail("alice")
	clock.Advance(30 * time.Second)
	tracker.Fail("bob")
	clock.Advance(45 * time.Second)

	tracker.Sweep(context.Background())

	assert.NotContains(t, tracker.failures, "alice")
	assert.Contains(t, tracker.failures, "bob")
}
