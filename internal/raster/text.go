package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"posefig/internal/figure"
	"posefig/internal/skeleton"
)

// labelFace is a fixed 7×13 bitmap face; it renders figure.LabelSize text
// at 1×. Larger sizes are integer multiples of it.
var labelFace font.Face = basicfont.Face7x13

func (c *Canvas) FillTextCentered(text string, at skeleton.Point, t figure.Text) {
	scale := int(math.Round(t.Size / figure.LabelSize))
	if scale < 1 {
		scale = 1
	}
	src := image.NewUniform(t.Color)
	adv := font.MeasureString(labelFace, text)
	x := int(math.Round(at.X))
	y := int(math.Round(at.Y))

	if scale == 1 {
		d := font.Drawer{
			Dst:  c.img,
			Src:  src,
			Face: labelFace,
			Dot:  fixed.Point26_6{X: fixed.I(x) - adv/2, Y: fixed.I(y)},
		}
		d.DrawString(text)
		return
	}

	// Draw at 1× into a scratch image, then blow it up with nearest
	// neighbour so glyph edges stay crisp.
	m := labelFace.Metrics()
	w, h := adv.Ceil(), (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: tmp, Src: src, Face: labelFace, Dot: fixed.Point26_6{Y: m.Ascent}}
	d.DrawString(text)

	x0 := x - w*scale/2
	y0 := y - m.Ascent.Ceil()*scale
	dst := image.Rect(x0, y0, x0+w*scale, y0+h*scale)
	draw.NearestNeighbor.Scale(c.img, dst, tmp, tmp.Bounds(), draw.Over, nil)
}
