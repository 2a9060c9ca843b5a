// Package floatkit manages floating overlays (hover tooltips and
// click-toggled panels) anchored to document elements.
//
// The lifecycle controllers live in pkg/tooltip and pkg/dropdown; they
// are pure state machines over two injected capabilities: a dom.Target
// supplying geometry and event listeners, and an overlay.Factory that
// mounts positioned floating content. pkg/bridge implements both over a
// WebSocket to a real browser, and pkg/floattest provides scripted
// fakes for tests.
//
// This package is a thin facade for the common cases:
//
//	floatkit.Hover(factory, target, "Save your changes")
package floatkit

import (
	"github.com/floatkit-dev/floatkit/pkg/dom"
	"github.com/floatkit-dev/floatkit/pkg/dropdown"
	"github.com/floatkit-dev/floatkit/pkg/overlay"
	"github.com/floatkit-dev/floatkit/pkg/tooltip"
)

// Version is the floatkit library version.
const Version = "0.2.0"

// Hover attaches a text tooltip to target and returns its controller.
// The tooltip mounts below the target's center on mouseenter and
// unmounts on mouseleave. Detach the controller when the target goes
// away.
func Hover(factory overlay.Factory, target dom.Target, label string, opts ...tooltip.Option) *tooltip.Controller {
	ctrl := tooltip.New(factory, opts...)
	ctrl.Attach(target, overlay.Content{Label: label})
	return ctrl
}

// HoverBody attaches a tooltip whose content is produced by a body
// renderer. The body and its props are captured each time the tooltip
// mounts; use Update on the returned controller to change them for
// later hovers.
func HoverBody(factory overlay.Factory, target dom.Target, body overlay.BodyRenderer, props overlay.Props, opts ...tooltip.Option) *tooltip.Controller {
	ctrl := tooltip.New(factory, opts...)
	ctrl.Attach(target, overlay.Content{Body: body, Props: props})
	return ctrl
}

// Menu attaches a click-toggled panel to trigger, dismissing on Escape
// and on clicks outside the trigger delivered through dismiss
// (typically the document element).
func Menu(factory overlay.Factory, trigger, dismiss dom.Target, content overlay.Content, opts ...dropdown.Option) *dropdown.Controller {
	base := []dropdown.Option{
		dropdown.WithDismissTarget(dismiss),
		dropdown.WithCloseOnEscape(true),
		dropdown.WithCloseOnClick(true),
	}
	ctrl := dropdown.New(factory, append(base, opts...)...)
	ctrl.Attach(trigger, content)
	return ctrl
}
