// Package record provides a figure.Surface that logs drawing operations as
// text instead of producing pixels.
package record

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"posefig/internal/figure"
	"posefig/internal/skeleton"
)

// Kind names a recorded operation.
type Kind string

const (
	KindClear  Kind = "clear"
	KindStroke Kind = "stroke"
	KindCircle Kind = "fill-circle"
	KindRect   Kind = "fill-rect"
	KindText   Kind = "text"
)

// Op is one recorded call.
type Op struct {
	Kind   Kind
	Points []skeleton.Point
	Rect   figure.Rect
	Radius float64
	Color  color.NRGBA
	Stroke figure.Stroke
	Text   string
	Style  figure.Text
}

// String formats the op as a single line.
func (o Op) String() string {
	switch o.Kind {
	case KindClear:
		return fmt.Sprintf("clear %s", rect(o.Rect))
	case KindStroke:
		parts := make([]string, len(o.Points))
		for i, p := range o.Points {
			parts[i] = num(p.X) + "," + num(p.Y)
		}
		return fmt.Sprintf("stroke %s w=%s cap=%s join=%s %s",
			Hex(o.Stroke.Color), num(o.Stroke.Width), o.Stroke.Cap, o.Stroke.Join, strings.Join(parts, " "))
	case KindCircle:
		return fmt.Sprintf("fill-circle %s %s r=%s %s", num(o.Points[0].X), num(o.Points[0].Y), num(o.Radius), Hex(o.Color))
	case KindRect:
		return fmt.Sprintf("fill-rect %s %s", rect(o.Rect), Hex(o.Color))
	case KindText:
		return fmt.Sprintf("text %q %s %s size=%s %s", o.Text, num(o.Points[0].X), num(o.Points[0].Y), num(o.Style.Size), Hex(o.Style.Color))
	}
	return string(o.Kind)
}

// Recorder is a figure.Surface that appends every call to Ops.
type Recorder struct {
	width, height int
	Ops           []Op
}

// New returns a recorder reporting the given size.
func New(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Clear(rc figure.Rect) {
	r.Ops = append(r.Ops, Op{Kind: KindClear, Rect: rc})
}

func (r *Recorder) StrokePolyline(pts []skeleton.Point, s figure.Stroke) {
	cp := make([]skeleton.Point, len(pts))
	copy(cp, pts)
	r.Ops = append(r.Ops, Op{Kind: KindStroke, Points: cp, Stroke: s})
}

func (r *Recorder) FillCircle(c skeleton.Point, radius float64, fill color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: KindCircle, Points: []skeleton.Point{c}, Radius: radius, Color: fill})
}

func (r *Recorder) FillRect(rc figure.Rect, fill color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: KindRect, Rect: rc, Color: fill})
}

func (r *Recorder) FillTextCentered(text string, at skeleton.Point, t figure.Text) {
	r.Ops = append(r.Ops, Op{Kind: KindText, Points: []skeleton.Point{at}, Text: text, Style: t})
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// String returns one line per op, newline terminated.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Hex formats c as #rrggbb, or #rrggbbaa when not opaque.
func Hex(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func rect(r figure.Rect) string {
	return num(r.X) + " " + num(r.Y) + " " + num(r.W) + " " + num(r.H)
}
