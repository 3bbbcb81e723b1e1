// Package notify defines user-facing notifications raised by sheet
// operations and the history store that keeps them.
package notify

import (
	"context"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a message shown to the user after an operation such as an
// import or export.
type Notification struct {
	ID        int64
	Level     Level
	Op        string // operation that raised it, e.g. "import"; may be empty
	Message   string
	CreatedAt time.Time
}

// Store keeps the notification history.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context) ([]Notification, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
