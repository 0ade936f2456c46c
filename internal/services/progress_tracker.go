package services

import (
	"sync"

	"github.com/molarhq/molarlog/internal/models"
)

type ProgressLogReader interface {
	ListByUser(userID uint) ([]models.ActivityLog, error)
}

// ProgressTracker caches per-user category totals and subscribes to the
// change feed, so every store mutation invalidates the cache and the next
// read recomputes. This is the explicit recompute-on-notification half of
// the observer pattern.
type ProgressTracker struct {
	mu     sync.Mutex
	logs   ProgressLogReader
	totals map[uint]HoursTotals
}

func NewProgressTracker(logs ProgressLogReader, feed *ChangeFeed) *ProgressTracker {
	tracker := &ProgressTracker{
		logs:   logs,
		totals: make(map[uint]HoursTotals),
	}
	if feed != nil {
		feed.Subscribe(tracker.Invalidate)
	}
	return tracker
}

func (tracker *ProgressTracker) TotalsForUser(userID uint) (HoursTotals, error) {
	tracker.mu.Lock()
	cached, ok := tracker.totals[userID]
	tracker.mu.Unlock()
	if ok {
		return cached, nil
	}

	logs, err := tracker.logs.ListByUser(userID)
	if err != nil {
		return HoursTotals{}, err
	}
	totals := CategoryTotals(logs)

	tracker.mu.Lock()
	tracker.totals[userID] = totals
	tracker.mu.Unlock()
	return totals, nil
}

func (tracker *ProgressTracker) Invalidate() {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.totals = make(map[uint]HoursTotals)
}
