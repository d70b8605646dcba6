// Package notify implements the process-wide notification center: a
// depth-1 queue of ephemeral user-facing messages with timed dismiss.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for rendering.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultDuration is how long a notification stays live unless the
// caller asks otherwise.
const DefaultDuration = 5 * time.Second

// Notification is a single user-facing message.
type Notification struct {
	Message  string
	Severity Severity
}

// Sink receives every notification as it is shown. The CLI wires a
// printer here so messages render immediately; tests capture them.
type Sink func(Notification)

// Center holds at most one live notification. Showing a new one
// replaces the current one and cancels its expiry timer; the stale
// timer can never clear a successor.
type Center struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	gen     uint64
	sink    Sink
}

// NewCenter creates a notification center. sink may be nil.
func NewCenter(sink Sink) *Center {
	return &Center{sink: sink}
}

// Show replaces any live notification with a default-duration one.
func (c *Center) Show(message string, severity Severity) {
	c.ShowFor(message, severity, DefaultDuration)
}

// ShowFor replaces any live notification and (re)starts the expiry
// timer with the given duration.
func (c *Center) ShowFor(message string, severity Severity, d time.Duration) {
	n := Notification{Message: message, Severity: severity}

	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.current = &n
	c.timer = time.AfterFunc(d, func() { c.expire(gen) })
	sink := c.sink
	c.mu.Unlock()

	if sink != nil {
		sink(n)
	}
}

// Clear removes the live notification immediately. Safe to call when
// none is live.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.current = nil
}

// Current returns the live notification, if any.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// expire clears the notification only if it is still the one the
// timer was armed for.
func (c *Center) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.current = nil
	c.timer = nil
}
