package floattest

import "github.com/floatkit-dev/floatkit/pkg/dom"

// Target is a scripted fake hover target.
//
// Dispatch invokes registered handlers synchronously in registration
// order, matching the in-dispatch-order delivery a real host provides.
type Target struct {
	rect      dom.Rect
	nextID    dom.ListenerHandle
	listeners []listener
}

type listener struct {
	handle dom.ListenerHandle
	event  string
	fn     dom.Handler
}

// NewTarget creates a Target with the given bounding rectangle.
func NewTarget(rect dom.Rect) *Target {
	return &Target{rect: rect}
}

// Rect implements dom.Element.
func (t *Target) Rect() dom.Rect {
	return t.rect
}

// SetRect updates the rectangle reported to controllers.
func (t *Target) SetRect(rect dom.Rect) {
	t.rect = rect
}

// AddListener implements dom.EventTarget.
func (t *Target) AddListener(event string, h dom.Handler) dom.ListenerHandle {
	t.nextID++
	t.listeners = append(t.listeners, listener{handle: t.nextID, event: event, fn: h})
	return t.nextID
}

// RemoveListener implements dom.EventTarget. Unknown handles are ignored.
func (t *Target) RemoveListener(handle dom.ListenerHandle) {
	for i, l := range t.listeners {
		if l.handle == handle {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch fires a synthetic event, invoking every listener registered
// for it. Returns the number of listeners invoked, so tests can assert
// that a detached target no longer reacts.
func (t *Target) Dispatch(event string) int {
	// Snapshot so handlers that add or remove listeners don't affect
	// this dispatch.
	fired := make([]dom.Handler, 0, len(t.listeners))
	for _, l := range t.listeners {
		if l.event == event {
			fired = append(fired, l.fn)
		}
	}
	for _, fn := range fired {
		fn()
	}
	return len(fired)
}

// ListenerCount returns the number of listeners registered for event.
// An empty event counts all listeners.
func (t *Target) ListenerCount(event string) int {
	if event == "" {
		return len(t.listeners)
	}
	n := 0
	for _, l := range t.listeners {
		if l.event == event {
			n++
		}
	}
	return n
}
