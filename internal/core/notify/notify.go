// Package notify defines user-facing notifications and the surface that
// displays them.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	ID        int64
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Notifier displays a notification. onClose, when non-nil, must be invoked
// exactly once after the notification is no longer shown.
type Notifier interface {
	Notify(level Level, message string, onClose func())
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(level Level, message string, onClose func())

func (f NotifierFunc) Notify(level Level, message string, onClose func()) {
	f(level, message, onClose)
}
