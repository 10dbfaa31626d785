package figure

import "image/color"

// Visual constants shared by every pose.
const (
	// ReferenceSize is the edge of the square frame programs are authored in.
	ReferenceSize = 300

	HeadRadius = 8
	LineWidth  = 3.5

	// DefaultWidth and DefaultHeight are the gallery card dimensions.
	DefaultWidth  = 120
	DefaultHeight = 110

	FallbackLabel = "No Image"
	LabelSize     = 12

	placeholderInset = 20
)

var (
	Ink             = color.NRGBA{R: 0x2d, G: 0x34, B: 0x36, A: 0xff}
	PlaceholderFill = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	PlaceholderText = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

// InkStroke is the stroke used for every limb path.
func InkStroke() Stroke {
	return Stroke{Color: Ink, Width: LineWidth, Cap: CapRound, Join: JoinRound}
}
