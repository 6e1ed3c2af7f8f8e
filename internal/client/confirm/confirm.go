// Package confirm binds a pending destructive action to an explicit yes/no
// from the user.
package confirm

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/siteadmin/internal/client/models"
)

// Action is the destructive operation run on confirmation.
type Action func(ctx context.Context, id models.ID) error

// Request is the pending binding shown in the dialog.
type Request struct {
	ID    models.ID
	Label string
}

// Controller is closed until Request and returns to closed on Cancel or
// Confirm. A second Request while pending replaces the binding.
type Controller struct {
	mu      sync.Mutex
	action  Action
	pending *Request
}

func NewController(action Action) *Controller {
	return &Controller{action: action}
}

func (c *Controller) Request(id models.ID, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = &Request{ID: id, Label: label}
}

func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// Pending returns the open binding, if any.
func (c *Controller) Pending() (Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return Request{}, false
	}
	return *c.pending, true
}

// Confirm runs the action once with the bound id, then closes the dialog.
// It does nothing when no request is pending. The action's error is
// returned as is.
func (c *Controller) Confirm(ctx context.Context) error {
	req, ok := c.Pending()
	if !ok {
		return nil
	}

	err := c.action(ctx, req.ID)

	c.mu.Lock()
	if c.pending != nil && *c.pending == req {
		c.pending = nil
	}
	c.mu.Unlock()

	return err
}

// Prompt is the question put to the user for the pending request.
func (r Request) Prompt() string {
	return fmt.Sprintf("Delete user %q? This cannot be undone.", r.Label)
}
