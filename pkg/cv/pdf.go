package cv

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const fontFamily = "Helvetica"

// PDFSurface draws onto an A4 portrait PDF using the core Helvetica fonts.
type PDFSurface struct {
	pdf        *fpdf.Fpdf
	translate  func(string) string
	reemitFont bool
}

// NewPDFSurface returns an empty A4 document. Automatic page breaks are off:
// the layout decides where pages end.
func NewPDFSurface(meta Metadata) (s *PDFSurface) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetCompression(true)
	pdf.SetCreator("portfolio", true)
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
	}

	s = &PDFSurface{
		pdf: pdf,
		// core fonts are cp1252, text arrives as UTF-8
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	return s
}

func (s *PDFSurface) AddPage() {
	s.pdf.AddPage()
}

// SetPage moves drawing back to page n (1-based).
func (s *PDFSurface) SetPage(n int) {
	s.pdf.SetPage(n)
	// fpdf skips a SetFont equal to the current one, but font state lives in
	// each page's content stream.
	s.reemitFont = true
}

func (s *PDFSurface) PageCount() int {
	return s.pdf.PageCount()
}

func (s *PDFSurface) PageSize() (width, height float64) {
	width, height = s.pdf.GetPageSize()
	return width, height
}

func (s *PDFSurface) SetFont(style FontStyle, size float64) {
	if s.reemitFont {
		s.pdf.SetFont(fontFamily, string(style), size+1)
		s.reemitFont = false
	}
	s.pdf.SetFont(fontFamily, string(style), size)
}

func (s *PDFSurface) SetDrawColor(r, g, b int) {
	s.pdf.SetDrawColor(r, g, b)
}

func (s *PDFSurface) Text(x, y float64, text string, align Align) {
	encoded := s.translate(text)
	switch align {
	case AlignCenter:
		x -= s.pdf.GetStringWidth(encoded) / 2
	case AlignRight:
		x -= s.pdf.GetStringWidth(encoded)
	}
	s.pdf.Text(x, y, encoded)
}

func (s *PDFSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *PDFSurface) TextWidth(text string) float64 {
	return s.pdf.GetStringWidth(s.translate(text))
}

func (s *PDFSurface) Err() error {
	if !s.pdf.Ok() {
		return s.pdf.Error()
	}
	return nil
}

// Output finalizes the document and writes it to w.
func (s *PDFSurface) Output(w io.Writer) (err error) {
	err = s.pdf.Output(w)
	if err != nil {
		err = errors.Wrap(err, "failed to write pdf")
		return err
	}
	return err
}
