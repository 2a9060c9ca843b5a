package bridge

import "github.com/floatkit-dev/floatkit/pkg/dom"

// Element is the bridge's view of one browser element. It implements
// dom.Target: geometry is the last rect the client reported, and
// listeners fire from the session's read loop in arrival order.
//
// Before the client has reported any geometry the rect is zero, which
// the overlay anchor math degrades on rather than failing, the same
// behavior a detached element gets.
type Element struct {
	session *Session
	id      string

	rect       dom.Rect
	nextHandle dom.ListenerHandle
	listeners  []elementListener
}

type elementListener struct {
	handle dom.ListenerHandle
	event  string
	fn     dom.Handler
}

// ID returns the element's client-side id.
func (e *Element) ID() string {
	return e.id
}

// Rect implements dom.Element.
func (e *Element) Rect() dom.Rect {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	return e.rect
}

// AddListener implements dom.EventTarget.
func (e *Element) AddListener(event string, h dom.Handler) dom.ListenerHandle {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.nextHandle++
	e.listeners = append(e.listeners, elementListener{handle: e.nextHandle, event: event, fn: h})
	return e.nextHandle
}

// RemoveListener implements dom.EventTarget. Unknown handles no-op.
func (e *Element) RemoveListener(handle dom.ListenerHandle) {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	for i, l := range e.listeners {
		if l.handle == handle {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// setRect refreshes the cached geometry from a client report.
func (e *Element) setRect(r dom.Rect) {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.rect = r
}

// fire invokes the listeners registered for event. Called only from the
// session's dispatch path.
func (e *Element) fire(event string) {
	e.session.mu.Lock()
	fired := make([]dom.Handler, 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.event == event {
			fired = append(fired, l.fn)
		}
	}
	e.session.mu.Unlock()

	// Handlers run outside the lock: a hover handler mounts or destroys
	// overlays, which writes frames through the same session.
	for _, fn := range fired {
		fn()
	}
}
