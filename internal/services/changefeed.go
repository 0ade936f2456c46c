package services

import "sync"

// ChangeFeed decouples store mutations from derived-state consumers:
// services notify it after every successful write and readers subscribe to
// recompute their aggregates. Notification is synchronous; subscribers must
// not mutate the store from their callback.
type ChangeFeed struct {
	mu          sync.Mutex
	subscribers []func()
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{}
}

func (feed *ChangeFeed) Subscribe(callback func()) {
	if callback == nil {
		return
	}
	feed.mu.Lock()
	defer feed.mu.Unlock()
	feed.subscribers = append(feed.subscribers, callback)
}

func (feed *ChangeFeed) Notify() {
	feed.mu.Lock()
	callbacks := make([]func(), len(feed.subscribers))
	copy(callbacks, feed.subscribers)
	feed.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}
