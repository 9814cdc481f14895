package tui

import (
	"time"

	"github.com/colonyops/pixpost/internal/core/notify"
	"github.com/colonyops/pixpost/pkg/utils"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 5
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toast struct {
	notification notify.Notification
	expires      time.Time
	onClose      func()
}

// ToastController manages the lifecycle of active toast notifications. It
// implements notify.Notifier: every toast's close callback runs exactly once,
// whether the toast expires, is dismissed or is evicted.
type ToastController struct {
	toasts  []toast
	ttl     time.Duration
	nextID  func() int64
	ticking bool
	now     func() time.Time
}

// NewToastController creates a controller whose toasts live for ttl. A
// non-positive ttl uses the default.
func NewToastController(ttl time.Duration) *ToastController {
	c := &ToastController{now: time.Now, nextID: utils.IDGenerator()}
	c.SetTTL(ttl)
	return c
}

// SetTTL changes the lifetime of toasts pushed from now on.
func (c *ToastController) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	c.ttl = ttl
}

// Notify pushes a toast. onClose may be nil.
func (c *ToastController) Notify(level notify.Level, message string, onClose func()) {
	c.push(toast{
		notification: notify.Notification{
			ID:        c.nextID(),
			Level:     level,
			Message:   message,
			CreatedAt: c.now(),
		},
		expires: c.now().Add(c.ttl),
		onClose: onClose,
	})
}

// Push adds a notification without a close callback.
func (c *ToastController) Push(n notify.Notification) {
	c.Notify(n.Level, n.Message, nil)
}

// push appends t. If the stack exceeds defaultMaxToasts, the oldest toasts
// are evicted and closed.
func (c *ToastController) push(t toast) {
	c.toasts = append(c.toasts, t)
	if len(c.toasts) > defaultMaxToasts {
		evicted := c.toasts[:len(c.toasts)-defaultMaxToasts]
		c.toasts = append([]toast(nil), c.toasts[len(c.toasts)-defaultMaxToasts:]...)
		closeAll(evicted)
	}
}

// Expire removes every toast whose deadline has passed.
func (c *ToastController) Expire() {
	now := c.now()

	var expired []toast
	alive := make([]toast, 0, len(c.toasts))
	for _, t := range c.toasts {
		if now.Before(t.expires) {
			alive = append(alive, t)
			continue
		}
		expired = append(expired, t)
	}
	c.toasts = alive
	closeAll(expired)
}

// Dismiss removes the newest (bottom-most) toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) == 0 {
		return
	}
	last := c.toasts[len(c.toasts)-1]
	c.toasts = c.toasts[:len(c.toasts)-1]
	closeAll([]toast{last})
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	all := c.toasts
	c.toasts = nil
	closeAll(all)
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the current active toast slice.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// closeAll runs close callbacks after the toasts have been removed, so a
// callback may safely push new toasts.
func closeAll(ts []toast) {
	for _, t := range ts {
		if t.onClose != nil {
			t.onClose()
		}
	}
}
