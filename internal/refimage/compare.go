package refimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"posefig/internal/postprocess"
)

// ErrSizeMismatch is returned by Compare when the images differ in size.
var ErrSizeMismatch = errors.New("refimage: size mismatch")

// Background is the colour both images are flattened onto before comparing.
var Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Diff summarises a pixel comparison.
type Diff struct {
	Total      int
	Mismatched int
	// MaxDelta is the largest channel difference seen.
	MaxDelta uint8
}

// Ratio is the fraction of mismatched pixels.
func (d Diff) Ratio() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Mismatched) / float64(d.Total)
}

func (d Diff) String() string {
	return fmt.Sprintf("%d/%d pixels differ (%.2f%%), max delta %d",
		d.Mismatched, d.Total, 100*d.Ratio(), d.MaxDelta)
}

// Compare flattens a and b onto Background and counts pixels where some
// channel differs by more than tolerance.
func Compare(a, b image.Image, tolerance uint8) (Diff, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return Diff{}, fmt.Errorf("%w: %v vs %v", ErrSizeMismatch, a.Bounds().Size(), b.Bounds().Size())
	}
	fa := postprocess.Flatten(a, Background)
	fb := postprocess.Flatten(b, Background)

	var d Diff
	for i := 0; i < len(fa.Pix); i += 4 {
		var delta uint8
		for c := 0; c < 3; c++ {
			delta = max(delta, absDiff(fa.Pix[i+c], fb.Pix[i+c]))
		}
		d.Total++
		d.MaxDelta = max(d.MaxDelta, delta)
		if delta > tolerance {
			d.Mismatched++
		}
	}
	return d, nil
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
