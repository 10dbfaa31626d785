package figure

import (
	"image/color"

	"posefig/internal/skeleton"
)

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y, W, H float64
}

// Max returns the bottom-right corner.
func (r Rect) Max() skeleton.Point {
	return skeleton.Pt(r.X+r.W, r.Y+r.H)
}

// LineCap selects how open polyline ends are drawn.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin selects how consecutive polyline segments meet.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Stroke describes how a polyline is drawn.
type Stroke struct {
	Color color.NRGBA
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// Text describes a label. Size is the nominal font size in surface units.
type Text struct {
	Color color.NRGBA
	Size  float64
}

// Surface is a mutable 2D drawing target of fixed pixel size.
// Drawing outside the surface bounds is clipped.
type Surface interface {
	Size() (width, height int)
	// Clear resets r to transparent.
	Clear(r Rect)
	StrokePolyline(pts []skeleton.Point, s Stroke)
	FillCircle(center skeleton.Point, radius float64, fill color.NRGBA)
	FillRect(r Rect, fill color.NRGBA)
	// FillTextCentered draws text horizontally centred on at.X with its
	// alphabetic baseline on at.Y.
	FillTextCentered(text string, at skeleton.Point, t Text)
}
