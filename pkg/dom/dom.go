package dom

// Pointer event names used by the hover controllers.
// Hosts that speak a non-DOM event vocabulary map their own analogues
// onto these two names.
const (
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventClick      = "click"

	// EventEscape is a synthetic event hosts dispatch when the Escape
	// key is pressed. Handlers are payload-free, so key filtering
	// happens on the host side.
	EventEscape = "escape"
)

// Rect is an element's bounding rectangle.
// A detached or unreported element yields the zero Rect; geometry
// consumers degrade rather than fail on it.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero returns true if the rect carries no geometry.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Handler is a registered event callback.
// Events carry no payload the controllers care about; geometry is read
// from the target at dispatch time.
type Handler func()

// Element exposes bounding geometry for a host element.
type Element interface {
	// Rect returns the element's current bounding rectangle, in the
	// coordinate space the host's overlay factory expects.
	Rect() Rect
}

// EventTarget registers and removes event listeners on a host element.
// RemoveListener with a handle that was never added is a no-op.
type EventTarget interface {
	AddListener(event string, h Handler) ListenerHandle
	RemoveListener(handle ListenerHandle)
}

// ListenerHandle identifies a registered listener for removal.
// Handles are opaque to callers and valid only against the target that
// issued them.
type ListenerHandle uint64

// Target is a host element a controller can bind to.
type Target interface {
	Element
	EventTarget
}
