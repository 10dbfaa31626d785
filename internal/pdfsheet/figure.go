package pdfsheet

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"posefig/internal/figure"
)

// mmPerCSSPixel maps one surface pixel to 1/96 inch.
const mmPerCSSPixel = 25.4 / 96

// WriteFigure writes a one-page PDF the size of a width×height surface
// holding a single pose drawing. It reports whether the pose had a program.
func WriteFigure(w io.Writer, r *figure.Renderer, name string, width, height int) (bool, error) {
	if width <= 0 || height <= 0 {
		return false, figure.ErrInvalidSize
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: float64(width) * mmPerCSSPixel, Ht: float64(height) * mmPerCSSPixel},
	})
	pdf.SetTitle(name, true)
	pdf.SetCreator("posefig", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	s := NewSurface(pdf, 0, 0, mmPerCSSPixel, width, height, coreFamily)
	s.Begin()
	ok := r.Render(s, name)
	s.End()

	if err := pdf.Output(w); err != nil {
		return ok, fmt.Errorf("pdfsheet: write figure %s: %w", name, err)
	}
	return ok, nil
}
