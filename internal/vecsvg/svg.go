// Package vecsvg is a figure.Surface that builds an SVG document.
package vecsvg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"posefig/internal/figure"
	"posefig/internal/skeleton"
)

// Approximate advance of a sans-serif glyph, as a fraction of font size.
const glyphAdvance = 0.6

type element struct {
	markup string
	bounds figure.Rect
}

// Document accumulates drawing calls as SVG elements. SVG has no erase, so
// Clear drops every element whose visible part lies entirely inside the
// cleared rectangle; a clear that covers the whole document leaves it empty.
type Document struct {
	width, height int
	elems         []element
}

// New returns an empty width×height document.
func New(width, height int) *Document {
	return &Document{width: width, height: height}
}

func (d *Document) Size() (int, int) {
	return d.width, d.height
}

func (d *Document) Clear(r figure.Rect) {
	box := figure.Rect{W: float64(d.width), H: float64(d.height)}
	kept := d.elems[:0]
	for _, e := range d.elems {
		visible := intersect(e.bounds, box)
		if visible.W > 0 && visible.H > 0 && !contains(r, visible) {
			kept = append(kept, e)
		}
	}
	d.elems = kept
}

func (d *Document) StrokePolyline(pts []skeleton.Point, s figure.Stroke) {
	if len(pts) < 2 {
		return
	}
	parts := make([]string, len(pts))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	hw := s.Width / 2
	d.add(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s"%s stroke-width="%s" stroke-linecap="%s" stroke-linejoin="%s"/>`,
		strings.Join(parts, " "), hex(s.Color), opacity("stroke-opacity", s.Color), num(s.Width), s.Cap, s.Join),
		figure.Rect{X: minX - hw, Y: minY - hw, W: maxX - minX + s.Width, H: maxY - minY + s.Width})
}

func (d *Document) FillCircle(c skeleton.Point, r float64, fill color.NRGBA) {
	d.add(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
		num(c.X), num(c.Y), num(r), hex(fill), opacity("fill-opacity", fill)),
		figure.Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r})
}

func (d *Document) FillRect(r figure.Rect, fill color.NRGBA) {
	d.add(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`,
		num(r.X), num(r.Y), num(r.W), num(r.H), hex(fill), opacity("fill-opacity", fill)), r)
}

func (d *Document) FillTextCentered(text string, at skeleton.Point, t figure.Text) {
	var esc bytes.Buffer
	xml.EscapeText(&esc, []byte(text))
	w := float64(len([]rune(text))) * t.Size * glyphAdvance
	d.add(fmt.Sprintf(`<text x="%s" y="%s" font-family="sans-serif" font-size="%s" text-anchor="middle" fill="%s"%s>%s</text>`,
		num(at.X), num(at.Y), num(t.Size), hex(t.Color), opacity("fill-opacity", t.Color), esc.String()),
		figure.Rect{X: at.X - w/2, Y: at.Y - t.Size, W: w, H: t.Size * 1.25})
}

func (d *Document) add(markup string, bounds figure.Rect) {
	d.elems = append(d.elems, element{markup: markup, bounds: bounds})
}

// Len returns the number of live elements.
func (d *Document) Len() int {
	return len(d.elems)
}

// WriteTo writes the document as a standalone SVG file.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		d.width, d.height, d.width, d.height)
	for _, e := range d.elems {
		b.WriteString("  ")
		b.WriteString(e.markup)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Bytes returns the document as SVG.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}

func intersect(a, b figure.Rect) figure.Rect {
	x0, y0 := math.Max(a.X, b.X), math.Max(a.Y, b.Y)
	x1, y1 := math.Min(a.X+a.W, b.X+b.W), math.Min(a.Y+a.H, b.Y+b.H)
	return figure.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func contains(outer, inner figure.Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.X+inner.W <= outer.X+outer.W && inner.Y+inner.H <= outer.Y+outer.H
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(attr string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, num(float64(c.A)/255))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
