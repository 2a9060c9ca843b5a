package floatkit

import (
	"testing"

	"github.com/floatkit-dev/floatkit/pkg/dom"
	"github.com/floatkit-dev/floatkit/pkg/floattest"
	"github.com/floatkit-dev/floatkit/pkg/overlay"
	"github.com/floatkit-dev/floatkit/pkg/tooltip"
)

func TestHoverAttachesAndMounts(t *testing.T) {
	target := floattest.NewTarget(dom.Rect{Left: 100, Top: 50, Width: 40, Height: 20})
	factory := floattest.NewFactory()

	ctrl := Hover(factory, target, "hint")
	defer ctrl.Detach()

	target.Dispatch(dom.EventMouseEnter)
	floattest.ExpectLive(t, factory, 1)
	floattest.ExpectLabel(t, factory, "hint")
	if got, want := factory.Last().Anchor, (overlay.Anchor{X: 120, Y: 70}); got != want {
		t.Fatalf("anchor = %+v, want %+v", got, want)
	}
}

func TestHoverWithPlacementOption(t *testing.T) {
	target := floattest.NewTarget(dom.Rect{Left: 100, Top: 50, Width: 40, Height: 20})
	factory := floattest.NewFactory()

	Hover(factory, target, "hint", tooltip.WithPlacement(overlay.PlacementTop))
	target.Dispatch(dom.EventMouseEnter)

	if got, want := factory.Last().Anchor, (overlay.Anchor{X: 120, Y: 50}); got != want {
		t.Fatalf("anchor = %+v, want %+v", got, want)
	}
}

func TestHoverBodyCapturesProps(t *testing.T) {
	target := floattest.NewTarget(dom.Rect{Left: 0, Top: 0, Width: 10, Height: 10})
	factory := floattest.NewFactory()

	HoverBody(factory, target,
		overlay.BodyFunc(func(p overlay.Props) any { return p["user"] }),
		overlay.Props{"user": "demo"})

	target.Dispatch(dom.EventMouseEnter)
	inst := factory.Last()
	if inst.Content.Body.Render(inst.Content.Props) != "demo" {
		t.Fatal("body should render the attached props")
	}
}

func TestMenuTogglesAndDismisses(t *testing.T) {
	trigger := floattest.NewTarget(dom.Rect{Left: 0, Top: 0, Width: 20, Height: 20})
	doc := floattest.NewTarget(dom.Rect{})
	factory := floattest.NewFactory()

	ctrl := Menu(factory, trigger, doc, overlay.Content{Label: "menu"})

	trigger.Dispatch(dom.EventClick)
	doc.Dispatch(dom.EventClick) // the same click bubbling
	if !ctrl.IsOpen() {
		t.Fatal("trigger click should open the menu")
	}

	doc.Dispatch(dom.EventEscape)
	if ctrl.IsOpen() {
		t.Fatal("escape should close the menu")
	}
}
