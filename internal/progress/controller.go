package progress

import (
	"context"

	"github.com/quantmind-br/repoclone/internal/domain"
)

// Ensure Controller implements domain.ProgressCallbacks
var _ domain.ProgressCallbacks = (*Controller)(nil)

// Controller owns the render state of one clone operation.
// It is not safe for concurrent use; clone backends deliver callbacks
// sequentially.
type Controller struct {
	ctx      context.Context
	transfer TransferTracker
	checkout CheckoutTracker
	renderer Renderer
	closed   bool
}

// NewController creates a Controller. Once ctx is done the transfer
// callback asks the backend to abort.
func NewController(ctx context.Context, r Renderer) *Controller {
	if r == nil {
		r = NopRenderer{}
	}
	return &Controller{
		ctx:      ctx,
		renderer: r,
	}
}

// OnTransfer records the snapshot and redraws
func (c *Controller) OnTransfer(s domain.TransferSnapshot) bool {
	if c.closed {
		return false
	}
	c.transfer.Update(s)
	c.renderer.Render(&c.transfer, &c.checkout)
	return c.ctx.Err() == nil
}

// OnCheckout records the checkout position and redraws
func (c *Controller) OnCheckout(path string, current, total uint64) {
	if c.closed {
		return
	}
	c.checkout.Update(domain.CheckoutSnapshot{
		Current: current,
		Total:   total,
		Path:    path,
	})
	c.renderer.Render(&c.transfer, &c.checkout)
}

// Finish ends the display after a successful clone
func (c *Controller) Finish() {
	if c.closed {
		return
	}
	c.closed = true
	c.renderer.Finish()
}

// Fail reports err once. Later callbacks are ignored.
func (c *Controller) Fail(err error) {
	if c.closed {
		return
	}
	c.closed = true
	c.renderer.Fail(err)
}

// Transfer returns the latest transfer snapshot
func (c *Controller) Transfer() domain.TransferSnapshot {
	s, _ := c.transfer.Latest()
	return s
}

// Checkout returns the latest checkout snapshot
func (c *Controller) Checkout() domain.CheckoutSnapshot {
	s, _ := c.checkout.Latest()
	return s
}
