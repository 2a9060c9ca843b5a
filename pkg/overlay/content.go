package overlay

// Props is the property bag handed to a body renderer.
type Props map[string]any

// BodyRenderer is anything that can render floating body content from a
// property bag. The controllers never call Render themselves; the handle
// is passed through to the host's Factory, which decides when and how to
// render it.
type BodyRenderer interface {
	Render(props Props) any
}

// BodyFunc adapts a function to the BodyRenderer interface.
type BodyFunc func(props Props) any

// Render implements BodyRenderer.
func (f BodyFunc) Render(props Props) any {
	return f(props)
}

// Content is what a floating instance displays: a plain text label, a
// body renderer with its props, or both. The zero Content is valid and
// mounts as an empty ("no-op") overlay.
type Content struct {
	Label string
	Body  BodyRenderer
	Props Props
}

// IsEmpty returns true if the content has neither a label nor a body.
func (c Content) IsEmpty() bool {
	return c.Label == "" && c.Body == nil
}

// Patch is a partial content update applied to a live instance.
// Only fields with their set flag raised are applied; today the only
// live-patchable field is the text label. Body renderers and props are
// captured when the instance mounts and are not hot-swapped, since a
// body may carry internal state that is not safe to replace in place.
type Patch struct {
	Label    string
	SetLabel bool
}

// LabelPatch returns a Patch that replaces the text label.
func LabelPatch(label string) Patch {
	return Patch{Label: label, SetLabel: true}
}

// Apply returns the content with the patch applied.
func (p Patch) Apply(c Content) Content {
	if p.SetLabel {
		c.Label = p.Label
	}
	return c
}
