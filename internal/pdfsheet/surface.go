// Package pdfsheet draws pose figures into PDF documents with gofpdf: a
// figure.Surface mapped onto a rectangle of a page, and a contact-sheet
// writer laying a whole catalog out on A4 pages.
package pdfsheet

import (
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"posefig/internal/figure"
	"posefig/internal/mathutil"
	"posefig/internal/skeleton"
)

const ptPerMM = 72 / 25.4

// Surface is a figure.Surface occupying a width×height pixel box on the
// current PDF page. Pixels map to millimetres through a uniform scale.
// PDF cannot erase, so Clear paints the page colour (white). Colour alpha
// is ignored; every figure colour is opaque.
type Surface struct {
	pdf           *gofpdf.Fpdf
	width, height int
	m             mathutil.Mat3
	scale         float64
	family        string
}

// NewSurface places a width×height surface with its top-left corner at
// (x, y) mm, each pixel mmPerPx millimetres wide. Text uses fontFamily,
// which must already be registered with pdf.
func NewSurface(pdf *gofpdf.Fpdf, x, y, mmPerPx float64, width, height int, fontFamily string) *Surface {
	return &Surface{
		pdf:    pdf,
		width:  width,
		height: height,
		m:      mathutil.Mat3Mul(mathutil.Mat3Translate(x, y), mathutil.Mat3Scale(mmPerPx, mmPerPx)),
		scale:  mmPerPx,
		family: fontFamily,
	}
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Begin clips subsequent drawing to the surface box; pair it with End.
func (s *Surface) Begin() {
	x, y := s.m.Apply(0, 0)
	s.pdf.ClipRect(x, y, float64(s.width)*s.scale, float64(s.height)*s.scale, false)
}

// End closes the clip opened by Begin.
func (s *Surface) End() {
	s.pdf.ClipEnd()
}

func (s *Surface) Clear(r figure.Rect) {
	box := figure.Rect{W: float64(s.width), H: float64(s.height)}
	r = intersect(r, box)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	s.fillRect(r, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func (s *Surface) StrokePolyline(pts []skeleton.Point, st figure.Stroke) {
	if len(pts) < 2 {
		return
	}
	s.pdf.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
	s.pdf.SetLineWidth(st.Width * s.scale)
	s.pdf.SetLineCapStyle(st.Cap.String())
	s.pdf.SetLineJoinStyle(st.Join.String())

	x, y := s.m.Apply(pts[0].X, pts[0].Y)
	s.pdf.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = s.m.Apply(p.X, p.Y)
		s.pdf.LineTo(x, y)
	}
	s.pdf.DrawPath("D")
}

func (s *Surface) FillCircle(c skeleton.Point, r float64, fill color.NRGBA) {
	s.setFill(fill)
	x, y := s.m.Apply(c.X, c.Y)
	s.pdf.Circle(x, y, r*s.scale, "F")
}

func (s *Surface) FillRect(r figure.Rect, fill color.NRGBA) {
	s.fillRect(r, fill)
}

func (s *Surface) fillRect(r figure.Rect, fill color.NRGBA) {
	s.setFill(fill)
	x, y := s.m.Apply(r.X, r.Y)
	w, h := s.m.ApplyVector(r.W, r.H)
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *Surface) FillTextCentered(text string, at skeleton.Point, t figure.Text) {
	s.pdf.SetFont(s.family, "", t.Size*s.scale*ptPerMM)
	s.pdf.SetTextColor(int(t.Color.R), int(t.Color.G), int(t.Color.B))
	x, y := s.m.Apply(at.X, at.Y)
	s.pdf.Text(x-s.pdf.GetStringWidth(text)/2, y, text)
}

func (s *Surface) setFill(c color.NRGBA) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func intersect(a, b figure.Rect) figure.Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	return figure.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
