package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hay-kot/sheet/internal/core/notify"
	"github.com/rs/zerolog"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It records notifications
// in a Store and then dispatches them to subscribers inline, so it is safe to
// publish from the Bubble Tea Update loop.
type Bus struct {
	store       notify.Store
	log         zerolog.Logger
	now         func() time.Time
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a notification bus backed by the given store. If store is
// nil, notifications are dispatched to subscribers but not kept.
func NewBus(store notify.Store, logger zerolog.Logger) *Bus {
	return &Bus{
		store: store,
		log:   logger,
		now:   time.Now,
	}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish records a notification and dispatches it to all subscribers.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}

	if b.store != nil {
		id, err := b.store.Save(context.Background(), n)
		if err != nil {
			b.log.Error().Err(err).Str("message", n.Message).Msg("failed to record notification")
		} else {
			n.ID = id
		}
	}

	event := b.log.Info()
	if n.Level == notify.LevelError {
		event = b.log.Warn()
	}
	event.Str("level", string(n.Level)).Str("op", n.Op).Msg(n.Message)

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

func (b *Bus) publishf(level notify.Level, op, format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   level,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errorf publishes an error-level notification for op.
func (b *Bus) Errorf(op, format string, args ...any) {
	b.publishf(notify.LevelError, op, format, args...)
}

// Warnf publishes a warning-level notification for op.
func (b *Bus) Warnf(op, format string, args ...any) {
	b.publishf(notify.LevelWarning, op, format, args...)
}

// Infof publishes an info-level notification for op.
func (b *Bus) Infof(op, format string, args ...any) {
	b.publishf(notify.LevelInfo, op, format, args...)
}

// Successf publishes a success-level notification for op.
func (b *Bus) Successf(op, format string, args ...any) {
	b.publishf(notify.LevelSuccess, op, format, args...)
}

// History returns all recorded notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// Clear deletes all recorded notifications.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}
