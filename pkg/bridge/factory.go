package bridge

import (
	"sync"
	"sync/atomic"

	"github.com/floatkit-dev/floatkit/pkg/overlay"
)

// Factory is the session's overlay.Factory. Mount renders the body
// server-side (if any) and emits a mount frame; the returned instance
// emits patch and destroy frames against the same id.
type Factory struct {
	session *Session
	nextID  atomic.Uint64
}

// Mount implements overlay.Factory.
func (f *Factory) Mount(content overlay.Content, anchor overlay.Anchor, parent string) overlay.Instance {
	id := f.nextID.Add(1)

	frame := commandFrame{
		T:      frameMount,
		ID:     id,
		X:      anchor.X,
		Y:      anchor.Y,
		Parent: parent,
	}
	if content.Label != "" {
		label := content.Label
		frame.Label = &label
	}
	// Body content is rendered once, here. That fixes the body and its
	// props at mount time: later content updates only patch labels.
	if content.Body != nil {
		frame.Body = content.Body.Render(content.Props)
	}
	f.session.send(frame)

	return &wireInstance{session: f.session, id: id}
}

// wireInstance is a mounted overlay living in the client document.
type wireInstance struct {
	session *Session
	id      uint64

	mu        sync.Mutex
	destroyed bool
}

// Patch implements overlay.Instance.
func (w *wireInstance) Patch(p overlay.Patch) {
	w.mu.Lock()
	dead := w.destroyed
	w.mu.Unlock()
	if dead || !p.SetLabel {
		return
	}
	label := p.Label
	w.session.send(commandFrame{T: framePatch, ID: w.id, Label: &label})
}

// Destroy implements overlay.Instance. Redundant destroys send nothing.
func (w *wireInstance) Destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	w.mu.Unlock()
	w.session.send(commandFrame{T: frameDestroy, ID: w.id})
}
