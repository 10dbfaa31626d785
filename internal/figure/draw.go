package figure

import "posefig/internal/skeleton"

var referenceFrame = Rect{W: ReferenceSize, H: ReferenceSize}

// Draw renders p onto s in reference-frame coordinates. The reference frame
// is cleared first so nothing from a previous render survives.
func Draw(s Surface, p skeleton.Program) {
	s.Clear(referenceFrame)

	stroke := InkStroke()
	s.FillCircle(p.Head, HeadRadius, Ink)
	for _, path := range p.Paths() {
		s.StrokePolyline(path.Points(), stroke)
	}
}

// DrawPlaceholder clears s and draws the "No Image" card.
func DrawPlaceholder(s Surface) {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)
	s.Clear(Rect{W: fw, H: fh})

	// Small surfaces keep a quarter of their shorter edge as margin.
	inset := min(placeholderInset, min(fw, fh)/4)
	s.FillRect(Rect{X: inset, Y: inset, W: fw - 2*inset, H: fh - 2*inset}, PlaceholderFill)
	s.FillTextCentered(FallbackLabel, skeleton.Pt(fw/2, fh/2), Text{Color: PlaceholderText, Size: LabelSize})
}
