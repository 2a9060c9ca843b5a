package dropdown

import (
	"github.com/floatkit-dev/floatkit/pkg/dom"
	"github.com/floatkit-dev/floatkit/pkg/overlay"
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	placement     overlay.Placement
	align         overlay.Align
	parent        string
	dismiss       dom.Target
	closeOnEscape bool
	closeOnClick  bool
}

func defaultConfig() config {
	return config{
		placement: overlay.PlacementBottom,
		align:     overlay.AlignStart,
	}
}

// WithPlacement sets the side of the trigger the panel anchors to.
func WithPlacement(p overlay.Placement) Option {
	return func(c *config) {
		c.placement = p
	}
}

// WithAlign sets the anchor alignment along the chosen side.
func WithAlign(a overlay.Align) Option {
	return func(c *config) {
		c.align = a
	}
}

// WithMountParent sets the host mount point for the panel.
func WithMountParent(parent string) Option {
	return func(c *config) {
		c.parent = parent
	}
}

// WithDismissTarget sets the document-level target dismiss listeners are
// registered on. Without one, WithCloseOnEscape and WithCloseOnClick
// have no effect.
func WithDismissTarget(t dom.Target) Option {
	return func(c *config) {
		c.dismiss = t
	}
}

// WithCloseOnEscape closes an open panel when the dismiss target
// dispatches an escape event.
func WithCloseOnEscape(close bool) Option {
	return func(c *config) {
		c.closeOnEscape = close
	}
}

// WithCloseOnClick closes an open panel when a click bubbles to the
// dismiss target from outside the trigger.
func WithCloseOnClick(close bool) Option {
	return func(c *config) {
		c.closeOnClick = close
	}
}

// Controller binds a click-toggled panel lifecycle to a trigger element.
// Like the tooltip controller it is a two-state machine with at most one
// live instance, and must be driven from a single dispatch goroutine.
type Controller struct {
	factory overlay.Factory
	config  config

	trigger dom.Target
	content overlay.Content
	live    overlay.Instance

	clickHandle   dom.ListenerHandle
	escapeHandle  dom.ListenerHandle
	outsideHandle dom.ListenerHandle

	// suppressDismiss skips the dismiss-click handler once after a
	// trigger click, since the same click bubbles to the dismiss target.
	suppressDismiss bool

	attached bool
}

// New creates a Controller that mounts panels through factory.
func New(factory overlay.Factory, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller{factory: factory, config: cfg}
}

// Attach binds the controller to trigger and registers its listeners.
// Nothing is mounted until the first toggle. Attaching an attached
// controller detaches it from its previous trigger first.
func (c *Controller) Attach(trigger dom.Target, content overlay.Content) {
	if c.attached {
		c.Detach()
	}
	c.trigger = trigger
	c.content = content
	c.clickHandle = trigger.AddListener(dom.EventClick, c.triggerClick)
	if d := c.config.dismiss; d != nil {
		if c.config.closeOnEscape {
			c.escapeHandle = d.AddListener(dom.EventEscape, c.Close)
		}
		if c.config.closeOnClick {
			c.outsideHandle = d.AddListener(dom.EventClick, c.outsideClick)
		}
	}
	c.attached = true
}

// Update replaces the stored content. An open panel gets only its label
// patched, matching the tooltip live-update policy; body and props apply
// on the next open.
func (c *Controller) Update(content overlay.Content) {
	c.content = content
	if c.live != nil {
		c.live.Patch(overlay.LabelPatch(content.Label))
	}
}

// Open mounts the panel if it is not already open.
func (c *Controller) Open() {
	if c.live != nil || !c.attached {
		return
	}
	anchor := overlay.AnchorFor(c.trigger.Rect(), c.config.placement, c.config.align)
	c.live = c.factory.Mount(c.content, anchor, c.config.parent)
}

// Close destroys the panel if it is open.
func (c *Controller) Close() {
	c.suppressDismiss = false
	if c.live == nil {
		return
	}
	c.live.Destroy()
	c.live = nil
}

// Toggle opens a closed panel and closes an open one.
func (c *Controller) Toggle() {
	if c.live != nil {
		c.Close()
	} else {
		c.Open()
	}
}

// IsOpen reports whether the panel is currently mounted.
func (c *Controller) IsOpen() bool {
	return c.live != nil
}

// Detach closes any open panel and removes all listeners. Idempotent.
func (c *Controller) Detach() {
	c.Close()
	if !c.attached {
		return
	}
	c.trigger.RemoveListener(c.clickHandle)
	if d := c.config.dismiss; d != nil {
		if c.config.closeOnEscape {
			d.RemoveListener(c.escapeHandle)
		}
		if c.config.closeOnClick {
			d.RemoveListener(c.outsideHandle)
		}
	}
	c.trigger = nil
	c.attached = false
}

func (c *Controller) triggerClick() {
	// The click that toggles the panel bubbles on to the dismiss
	// target; don't let it immediately dismiss what it just opened.
	// Only armed when an outside-click listener actually exists, so a
	// host that never bubbles the click cannot leave the flag stale.
	if c.config.closeOnClick && c.config.dismiss != nil {
		c.suppressDismiss = true
	}
	c.Toggle()
}

func (c *Controller) outsideClick() {
	if c.suppressDismiss {
		c.suppressDismiss = false
		return
	}
	c.Close()
}
