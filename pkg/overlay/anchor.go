package overlay

import "github.com/floatkit-dev/floatkit/pkg/dom"

// Placement is the side of the target the floating element anchors to.
type Placement string

const (
	PlacementTop    Placement = "top"
	PlacementRight  Placement = "right"
	PlacementBottom Placement = "bottom"
	PlacementLeft   Placement = "left"
)

// Align positions the anchor along the chosen side.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Anchor is the point a floating instance is positioned at.
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AnchorFor derives the anchor point for a target rectangle.
// The default hover placement is PlacementBottom with AlignCenter: the
// horizontal center of the target and its bottom edge. A zero rect
// degrades to the origin rather than failing, which is what a detached
// element reports.
//
// Unknown placements fall back to bottom; unknown alignments to center.
func AnchorFor(r dom.Rect, placement Placement, align Align) Anchor {
	switch placement {
	case PlacementTop:
		return Anchor{X: alongX(r, align), Y: r.Top}
	case PlacementLeft:
		return Anchor{X: r.Left, Y: alongY(r, align)}
	case PlacementRight:
		return Anchor{X: r.Left + r.Width, Y: alongY(r, align)}
	default:
		return Anchor{X: alongX(r, align), Y: r.Top + r.Height}
	}
}

func alongX(r dom.Rect, align Align) float64 {
	switch align {
	case AlignStart:
		return r.Left
	case AlignEnd:
		return r.Left + r.Width
	default:
		return r.Left + r.Width/2
	}
}

func alongY(r dom.Rect, align Align) float64 {
	switch align {
	case AlignStart:
		return r.Top
	case AlignEnd:
		return r.Top + r.Height
	default:
		return r.Top + r.Height/2
	}
}
