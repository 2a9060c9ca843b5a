package overlay

import (
	"testing"

	"github.com/floatkit-dev/floatkit/pkg/dom"
)

func TestAnchorForPlacements(t *testing.T) {
	rect := dom.Rect{Left: 100, Top: 50, Width: 40, Height: 20}

	cases := []struct {
		name      string
		placement Placement
		align     Align
		want      Anchor
	}{
		{"bottom center (hover default)", PlacementBottom, AlignCenter, Anchor{X: 120, Y: 70}},
		{"bottom start", PlacementBottom, AlignStart, Anchor{X: 100, Y: 70}},
		{"bottom end", PlacementBottom, AlignEnd, Anchor{X: 140, Y: 70}},
		{"top center", PlacementTop, AlignCenter, Anchor{X: 120, Y: 50}},
		{"left center", PlacementLeft, AlignCenter, Anchor{X: 100, Y: 60}},
		{"left end", PlacementLeft, AlignEnd, Anchor{X: 100, Y: 70}},
		{"right start", PlacementRight, AlignStart, Anchor{X: 140, Y: 50}},
		{"unknown placement falls back to bottom", Placement("diagonal"), AlignCenter, Anchor{X: 120, Y: 70}},
		{"unknown align falls back to center", PlacementTop, Align("middle"), Anchor{X: 120, Y: 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnchorFor(rect, tc.placement, tc.align); got != tc.want {
				t.Fatalf("AnchorFor() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAnchorForZeroRect(t *testing.T) {
	// A detached element reports a degenerate rect; the anchor degrades
	// to the origin instead of failing.
	if got := AnchorFor(dom.Rect{}, PlacementBottom, AlignCenter); got != (Anchor{}) {
		t.Fatalf("AnchorFor(zero rect) = %+v, want origin", got)
	}
}

func TestPatchAppliesOnlyLabel(t *testing.T) {
	body := BodyFunc(func(p Props) any { return "body" })
	c := Content{Label: "A", Body: body, Props: Props{"x": 1}}

	got := LabelPatch("B").Apply(c)

	if got.Label != "B" {
		t.Fatalf("label = %q, want B", got.Label)
	}
	if got.Body == nil || got.Props["x"] != 1 {
		t.Fatal("patch must not touch body or props")
	}

	// A patch without the label flag set changes nothing.
	if unchanged := (Patch{Label: "C"}).Apply(c); unchanged.Label != "A" {
		t.Fatalf("unset patch changed label to %q", unchanged.Label)
	}
}

func TestContentIsEmpty(t *testing.T) {
	if !(Content{}).IsEmpty() {
		t.Fatal("zero content should be empty")
	}
	if (Content{Label: "x"}).IsEmpty() {
		t.Fatal("labelled content is not empty")
	}
	if (Content{Body: BodyFunc(func(Props) any { return nil })}).IsEmpty() {
		t.Fatal("content with a body is not empty")
	}
}
