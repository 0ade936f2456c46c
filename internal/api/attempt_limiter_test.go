package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "203.0.113.7"
	window := 15 * time.Minute
	now := time.Now().UTC()

	limiter.addFailure(key, now.Add(-time.Hour), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected stale attempt to be pruned from active window")
	}

	limiter.addFailure(key, now.Add(-5*time.Minute), window)
	if !limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected one recent attempt to hit limit 1")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected no attempts after reset")
	}
}

func TestAttemptLimiterTracksKeysIndependently(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	window := 15 * time.Minute
	now := time.Now().UTC()

	limiter.addFailure("203.0.113.7", now, window)
	if limiter.tooManyRecent("198.51.100.4", now, 1, window) {
		t.Fatal("expected failures on one key not to count against another")
	}
}
