package figure

import (
	"image/color"
	"math"

	"posefig/internal/mathutil"
	"posefig/internal/skeleton"
)

// scaledSurface forwards drawing to an inner surface through a uniform
// scale about the origin. Stroke widths, radii and text sizes scale too.
type scaledSurface struct {
	inner Surface
	m     mathutil.Mat3
	k     float64
}

// Scaled returns a view of s whose unit is k inner pixels. Its Size is the
// inner size divided by k, rounded.
func Scaled(s Surface, k float64) Surface {
	if k == 1 {
		return s
	}
	return &scaledSurface{inner: s, m: mathutil.Mat3Scale(k, k), k: k}
}

func (s *scaledSurface) Size() (int, int) {
	w, h := s.inner.Size()
	return int(math.Round(float64(w) / s.k)), int(math.Round(float64(h) / s.k))
}

func (s *scaledSurface) pt(p skeleton.Point) skeleton.Point {
	x, y := s.m.Apply(p.X, p.Y)
	return skeleton.Pt(x, y)
}

func (s *scaledSurface) rect(r Rect) Rect {
	x, y := s.m.Apply(r.X, r.Y)
	w, h := s.m.ApplyVector(r.W, r.H)
	return Rect{X: x, Y: y, W: w, H: h}
}

func (s *scaledSurface) Clear(r Rect) {
	s.inner.Clear(s.rect(r))
}

func (s *scaledSurface) StrokePolyline(pts []skeleton.Point, st Stroke) {
	out := make([]skeleton.Point, len(pts))
	for i, p := range pts {
		out[i] = s.pt(p)
	}
	st.Width *= s.k
	s.inner.StrokePolyline(out, st)
}

func (s *scaledSurface) FillCircle(c skeleton.Point, r float64, fill color.NRGBA) {
	s.inner.FillCircle(s.pt(c), r*s.k, fill)
}

func (s *scaledSurface) FillRect(r Rect, fill color.NRGBA) {
	s.inner.FillRect(s.rect(r), fill)
}

func (s *scaledSurface) FillTextCentered(text string, at skeleton.Point, t Text) {
	t.Size *= s.k
	s.inner.FillTextCentered(text, s.pt(at), t)
}
