package bridge

import (
	"time"

	"github.com/floatkit-dev/floatkit/pkg/dom"
)

// Event is a decoded DOM event flowing through the dispatch pipeline.
type Event struct {
	// Element is the reporting element's id.
	Element string

	// Name is the DOM event name ("mouseenter", "mouseleave", ...).
	Name string

	// Rect is the element's geometry at dispatch time.
	Rect dom.Rect

	// Time is when the bridge received the event.
	Time time.Time
}

// Dispatch delivers an event to its element's listeners.
type Dispatch func(*Event) error

// Middleware wraps a Dispatch to observe or filter events.
type Middleware func(next Dispatch) Dispatch

// chain composes middleware so the first one listed sees the event first.
func chain(core Dispatch, mws []Middleware) Dispatch {
	d := core
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}
