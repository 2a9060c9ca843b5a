package tooltip

import (
	"github.com/floatkit-dev/floatkit/pkg/dom"
	"github.com/floatkit-dev/floatkit/pkg/overlay"
)

// State is the controller's visibility state.
type State uint8

const (
	StateHidden  State = iota // no live instance
	StateVisible              // one live instance mounted
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "Hidden"
	case StateVisible:
		return "Visible"
	default:
		return "Unknown"
	}
}

// Option configures a Controller.
type Option func(*config)

type config struct {
	placement overlay.Placement
	align     overlay.Align
	parent    string
}

func defaultConfig() config {
	return config{
		placement: overlay.PlacementBottom,
		align:     overlay.AlignCenter,
	}
}

// WithPlacement sets the side of the target the tooltip anchors to.
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

// WithMountParent sets the host mount point for the floating instance.
// Empty means the host's default floating layer.
func WithMountParent(parent string) Option {
	return func(c *config) {
		c.parent = parent
	}
}

// Controller binds a hover lifecycle to a floating content renderer.
//
// The zero Controller is not usable; construct with New. A Controller is
// not safe for concurrent use; drive it from the host's single event
// dispatch goroutine.
type Controller struct {
	factory overlay.Factory
	config  config

	target  dom.Target
	content overlay.Content

	// live is non-nil exactly while the pointer hovers the target.
	live overlay.Instance

	enterHandle dom.ListenerHandle
	leaveHandle dom.ListenerHandle
	attached    bool
}

// New creates a Controller that mounts floating instances through factory.
func New(factory overlay.Factory, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller{factory: factory, config: cfg}
}

// Attach binds the controller to target and registers its enter/leave
// listeners. Nothing is rendered until the first mouseenter.
//
// The content is stored on the controller, so a later Update affects any
// in-flight hover. Attaching an already-attached controller detaches it
// from its previous target first.
func (c *Controller) Attach(target dom.Target, content overlay.Content) {
	if c.attached {
		c.Detach()
	}
	c.target = target
	c.content = content
	c.enterHandle = target.AddListener(dom.EventMouseEnter, c.hoverEnter)
	c.leaveHandle = target.AddListener(dom.EventMouseLeave, c.hoverLeave)
	c.attached = true
}

// Update replaces the stored content.
//
// If an instance is currently visible, only the text label is patched
// through to it; the body renderer and props it mounted with stay in
// effect until the next mount. The full new content applies on the next
// mouseenter. Update on a never-attached controller only stores content.
func (c *Controller) Update(content overlay.Content) {
	c.content = content
	if c.live != nil {
		c.live.Patch(overlay.LabelPatch(content.Label))
	}
}

// Detach destroys any live instance and removes both listeners from the
// target. Idempotent: detaching twice has no additional effect. The
// stored content survives, so the controller can be re-attached.
func (c *Controller) Detach() {
	c.hoverLeave()
	if !c.attached {
		return
	}
	c.target.RemoveListener(c.enterHandle)
	c.target.RemoveListener(c.leaveHandle)
	c.target = nil
	c.attached = false
}

// State returns the current visibility state.
func (c *Controller) State() State {
	if c.live != nil {
		return StateVisible
	}
	return StateHidden
}

// Visible reports whether a floating instance is currently mounted.
func (c *Controller) Visible() bool {
	return c.live != nil
}

// hoverEnter mounts the floating instance. A duplicate enter while one
// is already live is ignored, so repeated enter events cannot stack
// instances.
func (c *Controller) hoverEnter() {
	if c.live != nil {
		return
	}
	anchor := overlay.AnchorFor(c.target.Rect(), c.config.placement, c.config.align)
	c.live = c.factory.Mount(c.content, anchor, c.config.parent)
}

// hoverLeave destroys the live instance, if any.
func (c *Controller) hoverLeave() {
	if c.live == nil {
		return
	}
	c.live.Destroy()
	c.live = nil
}
