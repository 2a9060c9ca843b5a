// Package tooltip manages the hover lifecycle of a single floating
// tooltip bound to a target element.
//
// A Controller is a two-state machine. It starts Hidden; a mouseenter on
// the target mounts one floating instance through the host's overlay
// factory (Visible), and the matching mouseleave destroys it (Hidden).
// Repeated enter or leave events in the same state are no-ops, so rapid
// hover churn can never stack instances or leak them.
//
//	ctrl := tooltip.New(factory)
//	ctrl.Attach(target, overlay.Content{Label: "Save your changes"})
//	defer ctrl.Detach()
//
// Content can be replaced at any time with Update. While an instance is
// visible only the text label is patched through to it; a body renderer
// and its props are captured at mount time and keep rendering unchanged
// until the next mount.
//
// Controllers are driven synchronously from the host's event dispatch.
// Each controller is independent; create one per hover target.
package tooltip
