// Package stores holds in-memory implementations of the core store
// interfaces. Nothing here outlives the process.
package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/hay-kot/sheet/internal/core/notify"
)

// DefaultNotifyLimit is the number of notifications kept when no limit is
// given.
const DefaultNotifyLimit = 100

// NotifyStore implements notify.Store in memory. When full, the oldest
// notification is dropped.
type NotifyStore struct {
	mu     sync.Mutex
	items  []notify.Notification
	nextID int64
	limit  int
}

var _ notify.Store = (*NotifyStore)(nil)

// NewNotifyStore creates a store that keeps at most limit notifications.
// A limit below one means DefaultNotifyLimit.
func NewNotifyStore(limit int) *NotifyStore {
	if limit < 1 {
		limit = DefaultNotifyLimit
	}
	return &NotifyStore{limit: limit}
}

// Save records a notification and returns its assigned ID.
func (s *NotifyStore) Save(_ context.Context, n notify.Notification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n.ID = s.nextID
	s.items = append(s.items, n)
	if over := len(s.items) - s.limit; over > 0 {
		s.items = slices.Delete(s.items, 0, over)
	}

	return n.ID, nil
}

// List returns all notifications ordered by newest first.
func (s *NotifyStore) List(_ context.Context) ([]notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]notify.Notification, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		result = append(result, s.items[i])
	}
	return result, nil
}

// Clear deletes all notifications. IDs keep increasing afterwards.
func (s *NotifyStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return nil
}

// Count returns the number of kept notifications.
func (s *NotifyStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.items)), nil
}
