// Package notify is the single-slot status message shown after every
// asynchronous operation.
package notify

import "sync"

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

// Notifier is what the controllers need: a place to report an outcome.
type Notifier interface {
	Show(kind Kind, title, message string)
}

// Controller holds at most one visible notification. Show replaces the
// current one; Dismiss hides it.
type Controller struct {
	mu      sync.Mutex
	current Notification
	visible bool
	onShow  func(Notification)
}

type Option func(*Controller)

// OnShow registers fn to be called, outside the lock, after each Show.
func OnShow(fn func(Notification)) Option {
	return func(c *Controller) { c.onShow = fn }
}

func NewController(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Show(kind Kind, title, message string) {
	n := Notification{Kind: kind, Title: title, Message: message}

	c.mu.Lock()
	c.current, c.visible = n, true
	hook := c.onShow
	c.mu.Unlock()

	if hook != nil {
		hook(n)
	}
}

func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current, c.visible = Notification{}, false
}

// Current returns the visible notification, if any.
func (c *Controller) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.visible
}
