package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"posefig/internal/figure"
	"posefig/internal/skeleton"
)

const miterLimit = 4

// Canvas is a figure.Surface backed by an RGBA image. Pixels start
// transparent; strokes and discs are antialiased.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// pixelRect covers every pixel r touches, clipped to the canvas.
func (c *Canvas) pixelRect(r figure.Rect) image.Rectangle {
	br := r.Max()
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(br.X)), int(math.Ceil(br.Y)),
	).Intersect(c.img.Bounds())
}

func (c *Canvas) Clear(r figure.Rect) {
	draw.Draw(c.img, c.pixelRect(r), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r figure.Rect, fill color.NRGBA) {
	br := r.Max()
	px := image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(br.X)), int(math.Round(br.Y)),
	).Canon().Intersect(c.img.Bounds())
	draw.Draw(c.img, px, image.NewUniform(fill), image.Point{}, draw.Over)
}

func (c *Canvas) scanner(clr color.Color) *rasterx.ScannerGV {
	w, h := c.Size()
	s := rasterx.NewScannerGV(w, h, c.img, c.img.Bounds())
	s.SetColor(clr)
	return s
}

func (c *Canvas) FillCircle(center skeleton.Point, radius float64, fill color.NRGBA) {
	w, h := c.Size()
	f := rasterx.NewFiller(w, h, c.scanner(fill))
	rasterx.AddCircle(center.X, center.Y, radius, f)
	f.Draw()
}

func (c *Canvas) StrokePolyline(pts []skeleton.Point, st figure.Stroke) {
	if len(pts) < 2 {
		return
	}
	w, h := c.Size()
	s := rasterx.NewStroker(w, h, c.scanner(st.Color))
	capFn := capFunc(st.Cap)
	gap, join := joinMode(st.Join)
	s.SetStroke(toFixed(st.Width), toFixed(miterLimit), capFn, capFn, gap, join)

	s.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		s.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	s.Stop(false)
	s.Draw()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func capFunc(c figure.LineCap) rasterx.CapFunc {
	switch c {
	case figure.CapRound:
		return rasterx.RoundCap
	case figure.CapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j figure.LineJoin) (rasterx.GapFunc, rasterx.JoinMode) {
	switch j {
	case figure.JoinRound:
		return rasterx.RoundGap, rasterx.Round
	case figure.JoinBevel:
		return rasterx.FlatGap, rasterx.Bevel
	default:
		return rasterx.FlatGap, rasterx.Miter
	}
}
