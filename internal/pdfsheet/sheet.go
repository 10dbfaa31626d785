package pdfsheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"posefig/internal/catalog"
	"posefig/internal/figure"
)

const (
	pageMargin  = 10.0
	cellPadding = 2.0
	lineHeight  = 4.5
	coreFamily  = "Helvetica"
	utf8Family  = "posefig"
)

// Options controls the contact-sheet layout.
type Options struct {
	// FontFile is a TrueType font with CJK coverage. Without it only
	// Latin-1 text (English names, Latin categories) is printed.
	FontFile string
	Columns  int
	Rows     int
	// Width and Height are the figure box in surface pixels.
	Width  int
	Height int
	Title  string
}

func (o *Options) defaults() {
	if o.Columns <= 0 {
		o.Columns = 3
	}
	if o.Rows <= 0 {
		o.Rows = 3
	}
	if o.Width <= 0 {
		o.Width = figure.DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = figure.DefaultHeight
	}
	if o.Title == "" {
		o.Title = "Pose catalog"
	}
}

// Write lays out one cell per pose: the figure, its names, its category and
// its cues in sequence order.
func Write(w io.Writer, poses []catalog.Pose, r *figure.Renderer, opts Options) error {
	opts.defaults()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("posefig", false)
	pdf.SetAutoPageBreak(false, 0)

	family := coreFamily
	unicode := opts.FontFile != ""
	if unicode {
		pdf.AddUTF8Font(utf8Family, "", opts.FontFile)
		family = utf8Family
	}
	// Core fonts take cp1252 bytes; text is split on the UTF-8 form and
	// encoded per line.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	printable := func(s string) bool {
		if s == "" {
			return false
		}
		if unicode {
			return true
		}
		for _, c := range s {
			if c > 0xff {
				return false
			}
		}
		return true
	}
	enc := func(s string) string {
		if unicode {
			return s
		}
		return tr(s)
	}

	pageW, pageH := pdf.GetPageSize()
	cellW := (pageW - 2*pageMargin) / float64(opts.Columns)
	cellH := (pageH - 2*pageMargin) / float64(opts.Rows)
	mmPerPx := min((cellW-2*cellPadding)/float64(opts.Width), cellH*0.6/float64(opts.Height))
	figW, figH := float64(opts.Width)*mmPerPx, float64(opts.Height)*mmPerPx
	perPage := opts.Columns * opts.Rows

	if len(poses) == 0 {
		pdf.AddPage()
	}
	for i, pose := range poses {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		slot := i % perPage
		cx := pageMargin + float64(slot%opts.Columns)*cellW
		cy := pageMargin + float64(slot/opts.Columns)*cellH

		pdf.SetDrawColor(0xdd, 0xdd, 0xdd)
		pdf.SetLineWidth(0.2)
		pdf.Rect(cx, cy, cellW, cellH, "D")

		s := NewSurface(pdf, cx+(cellW-figW)/2, cy+cellPadding, mmPerPx, opts.Width, opts.Height, family)
		s.Begin()
		r.Render(s, pose.NameZH)
		s.End()

		y := cy + cellPadding + figH + lineHeight
		pdf.SetTextColor(0x2d, 0x34, 0x36)
		pdf.SetFont(family, "", 10)
		for _, name := range []string{pose.NameZH, pose.NameEN} {
			if printable(name) {
				pdf.Text(cx+cellPadding, y, enc(name))
				y += lineHeight
			}
		}

		pdf.SetFont(family, "", 7)
		pdf.SetTextColor(0x63, 0x6e, 0x72)
		if category := pose.CategoryLabel(); printable(category) {
			pdf.Text(cx+cellPadding, y, enc(category))
			y += lineHeight
		}

		bottom := cy + cellH - cellPadding
		for n, cue := range pose.SortedCues() {
			line := fmt.Sprintf("%d. [%s] %s", n+1, cue.Type, cue.Content)
			if !printable(line) {
				continue
			}
			for _, part := range pdf.SplitText(line, cellW-2*cellPadding) {
				if y > bottom {
					break
				}
				pdf.Text(cx+cellPadding, y, enc(part))
				y += lineHeight * 0.8
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdfsheet: write: %w", err)
	}
	return nil
}

// WriteFile writes the contact sheet to path, creating parent directories.
func WriteFile(path string, poses []catalog.Pose, r *figure.Renderer, opts Options) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("pdfsheet: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdfsheet: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("pdfsheet: close %s: %w", path, cerr)
		}
	}()
	return Write(f, poses, r, opts)
}
