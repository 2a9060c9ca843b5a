package tooltip

import (
	"testing"

	"github.com/floatkit-dev/floatkit/pkg/dom"
	"github.com/floatkit-dev/floatkit/pkg/floattest"
	"github.com/floatkit-dev/floatkit/pkg/overlay"
)

func newFixture(opts ...Option) (*Controller, *floattest.Target, *floattest.Factory) {
	target := floattest.NewTarget(dom.Rect{Left: 100, Top: 50, Width: 40, Height: 20})
	factory := floattest.NewFactory()
	return New(factory, opts...), target, factory
}

func TestEnterMountsLeaveDestroys(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "hint"})

	if ctrl.State() != StateHidden {
		t.Fatalf("expected Hidden before any hover, got %s", ctrl.State())
	}
	floattest.ExpectMounts(t, factory, 0)

	target.Dispatch(dom.EventMouseEnter)
	if ctrl.State() != StateVisible {
		t.Fatalf("expected Visible after enter, got %s", ctrl.State())
	}
	floattest.ExpectLive(t, factory, 1)
	floattest.ExpectLabel(t, factory, "hint")

	target.Dispatch(dom.EventMouseLeave)
	if ctrl.Visible() {
		t.Fatal("expected Hidden after leave")
	}
	floattest.ExpectLive(t, factory, 0)
	floattest.ExpectMounts(t, factory, 1)
}

func TestEventSequencesPreserveInvariant(t *testing.T) {
	cases := []struct {
		name        string
		events      []string
		wantVisible bool
		wantMounts  int
	}{
		{"enter", []string{"enter"}, true, 1},
		{"enter leave", []string{"enter", "leave"}, false, 1},
		{"duplicate enter", []string{"enter", "enter"}, true, 1},
		{"leave without enter", []string{"leave"}, false, 0},
		{"churn", []string{"enter", "leave", "enter", "leave", "enter"}, true, 3},
		{"trailing duplicates", []string{"enter", "leave", "leave", "enter", "enter"}, true, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, target, factory := newFixture()
			ctrl.Attach(target, overlay.Content{Label: "x"})

			for _, ev := range tc.events {
				if ev == "enter" {
					target.Dispatch(dom.EventMouseEnter)
				} else {
					target.Dispatch(dom.EventMouseLeave)
				}
			}

			if ctrl.Visible() != tc.wantVisible {
				t.Errorf("visible = %v, want %v", ctrl.Visible(), tc.wantVisible)
			}
			floattest.ExpectMounts(t, factory, tc.wantMounts)
			wantLive := 0
			if tc.wantVisible {
				wantLive = 1
			}
			floattest.ExpectLive(t, factory, wantLive)
		})
	}
}

func TestNoLeakAcrossHoverCycles(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "x"})

	const pairs = 50
	for i := 0; i < pairs; i++ {
		target.Dispatch(dom.EventMouseEnter)
		target.Dispatch(dom.EventMouseLeave)
	}

	floattest.ExpectMounts(t, factory, pairs)
	floattest.ExpectLive(t, factory, 0)
	for i, inst := range factory.Mounts() {
		if inst.DestroyCount != 1 {
			t.Errorf("instance %d destroyed %d times, want exactly 1", i, inst.DestroyCount)
		}
	}
	if ctrl.Visible() {
		t.Fatal("expected Hidden after balanced enter/leave pairs")
	}
}

func TestUpdatePatchesLabelInPlace(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "A"})

	target.Dispatch(dom.EventMouseEnter)
	inst := factory.Last()
	floattest.ExpectLabel(t, factory, "A")

	ctrl.Update(overlay.Content{Label: "B"})

	if factory.Last() != inst {
		t.Fatal("expected the same instance after Update, got a remount")
	}
	if inst.Destroyed {
		t.Fatal("Update must not destroy the live instance")
	}
	floattest.ExpectLabel(t, factory, "B")
	floattest.ExpectMounts(t, factory, 1)
}

func TestUpdateWhileHiddenAppliesOnNextMount(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "A"})

	ctrl.Update(overlay.Content{Label: "B"})
	floattest.ExpectMounts(t, factory, 0)

	target.Dispatch(dom.EventMouseEnter)
	floattest.ExpectLabel(t, factory, "B")
}

func TestBodyRendererCapturedAtMount(t *testing.T) {
	render1 := overlay.BodyFunc(func(p overlay.Props) any { return "one" })
	render2 := overlay.BodyFunc(func(p overlay.Props) any { return "two" })

	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Body: render1, Props: overlay.Props{"x": 1}})

	target.Dispatch(dom.EventMouseEnter)
	inst := factory.Last()
	mountedBody := inst.Content.Body

	ctrl.Update(overlay.Content{Body: render2, Props: overlay.Props{"x": 2}})

	// Body and props are mount-time captures; only labels are live.
	if inst.Content.Body.Render(nil) != mountedBody.Render(nil) {
		t.Fatal("body renderer must not be hot-swapped on a live instance")
	}
	if got := inst.Content.Props["x"]; got != 1 {
		t.Fatalf("props must stay as mounted, got x=%v", got)
	}

	// The replacement body takes effect on the next hover cycle.
	target.Dispatch(dom.EventMouseLeave)
	target.Dispatch(dom.EventMouseEnter)
	if factory.Last().Content.Body.Render(nil) != "two" {
		t.Fatal("new body renderer should apply on remount")
	}
}

func TestDetachDestroysAndUnbinds(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "x"})
	target.Dispatch(dom.EventMouseEnter)

	ctrl.Detach()

	floattest.ExpectLive(t, factory, 0)
	if n := target.ListenerCount(""); n != 0 {
		t.Fatalf("expected no listeners after Detach, got %d", n)
	}
	if fired := target.Dispatch(dom.EventMouseEnter); fired != 0 {
		t.Fatalf("detached target fired %d listeners", fired)
	}
	floattest.ExpectMounts(t, factory, 1)
}

func TestDetachIsIdempotent(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "x"})
	target.Dispatch(dom.EventMouseEnter)

	ctrl.Detach()
	ctrl.Detach()

	floattest.ExpectLive(t, factory, 0)
	if inst := factory.Last(); inst.DestroyCount != 1 {
		t.Fatalf("instance destroyed %d times, want 1", inst.DestroyCount)
	}
}

func TestDetachBeforeHover(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "x"})

	ctrl.Detach()

	floattest.ExpectMounts(t, factory, 0)
	if fired := target.Dispatch(dom.EventMouseEnter); fired != 0 {
		t.Fatalf("expected no listeners on detached target, got %d fired", fired)
	}
	floattest.ExpectMounts(t, factory, 0)
}

func TestMisuseBeforeAttachIsNoOp(t *testing.T) {
	factory := floattest.NewFactory()
	ctrl := New(factory)

	ctrl.Update(overlay.Content{Label: "early"})
	ctrl.Detach()

	floattest.ExpectMounts(t, factory, 0)
	if ctrl.Visible() {
		t.Fatal("never-attached controller cannot be visible")
	}
}

func TestAnchorGeometry(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "x"})

	target.Dispatch(dom.EventMouseEnter)

	// Bottom-center of {100, 50, 40, 20}.
	want := overlay.Anchor{X: 120, Y: 70}
	if got := factory.Last().Anchor; got != want {
		t.Fatalf("anchor = %+v, want %+v", got, want)
	}
}

func TestDetachedTargetDegradesToOrigin(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{Label: "x"})

	// A target removed from the document reports a zero rect.
	target.SetRect(dom.Rect{})
	target.Dispatch(dom.EventMouseEnter)

	if got := factory.Last().Anchor; got != (overlay.Anchor{}) {
		t.Fatalf("anchor = %+v, want origin", got)
	}
}

func TestPlacementOptions(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		want overlay.Anchor
	}{
		{"default bottom center", nil, overlay.Anchor{X: 120, Y: 70}},
		{"top center", []Option{WithPlacement(overlay.PlacementTop)}, overlay.Anchor{X: 120, Y: 50}},
		{"right center", []Option{WithPlacement(overlay.PlacementRight)}, overlay.Anchor{X: 140, Y: 60}},
		{"left start", []Option{WithPlacement(overlay.PlacementLeft), WithAlign(overlay.AlignStart)}, overlay.Anchor{X: 100, Y: 50}},
		{"bottom end", []Option{WithAlign(overlay.AlignEnd)}, overlay.Anchor{X: 140, Y: 70}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, target, factory := newFixture(tc.opts...)
			ctrl.Attach(target, overlay.Content{Label: "x"})
			target.Dispatch(dom.EventMouseEnter)
			if got := factory.Last().Anchor; got != tc.want {
				t.Fatalf("anchor = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestReattachMovesController(t *testing.T) {
	ctrl, target, factory := newFixture()
	other := floattest.NewTarget(dom.Rect{Left: 10, Top: 10, Width: 10, Height: 10})

	ctrl.Attach(target, overlay.Content{Label: "x"})
	target.Dispatch(dom.EventMouseEnter)

	ctrl.Attach(other, overlay.Content{Label: "y"})

	// Re-attach detaches first: instance destroyed, old target unbound.
	floattest.ExpectLive(t, factory, 0)
	if n := target.ListenerCount(""); n != 0 {
		t.Fatalf("old target still has %d listeners", n)
	}

	other.Dispatch(dom.EventMouseEnter)
	floattest.ExpectLabel(t, factory, "y")
	if got, want := factory.Last().Anchor, (overlay.Anchor{X: 15, Y: 20}); got != want {
		t.Fatalf("anchor = %+v, want %+v", got, want)
	}
}

func TestControllersAreIndependent(t *testing.T) {
	factory := floattest.NewFactory()
	a := floattest.NewTarget(dom.Rect{Left: 0, Top: 0, Width: 10, Height: 10})
	b := floattest.NewTarget(dom.Rect{Left: 50, Top: 0, Width: 10, Height: 10})

	ctrlA := New(factory)
	ctrlB := New(factory)
	ctrlA.Attach(a, overlay.Content{Label: "a"})
	ctrlB.Attach(b, overlay.Content{Label: "b"})

	a.Dispatch(dom.EventMouseEnter)
	b.Dispatch(dom.EventMouseEnter)
	floattest.ExpectLive(t, factory, 2)

	a.Dispatch(dom.EventMouseLeave)
	floattest.ExpectLive(t, factory, 1)
	if !ctrlB.Visible() || ctrlA.Visible() {
		t.Fatal("leave on one target must not affect the other controller")
	}
}

func TestEmptyContentMountsNoOpTooltip(t *testing.T) {
	ctrl, target, factory := newFixture()
	ctrl.Attach(target, overlay.Content{})

	target.Dispatch(dom.EventMouseEnter)

	floattest.ExpectLive(t, factory, 1)
	if !factory.Last().Content.IsEmpty() {
		t.Fatal("expected empty content")
	}
}
