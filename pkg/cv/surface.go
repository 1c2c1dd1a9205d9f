package cv

import (
	"io"
	"time"
)

// FontStyle selects a face of the document font family.
type FontStyle string

// Font styles understood by every Surface.
const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
	Italic  FontStyle = "I"
)

// Align positions a text run relative to its x coordinate.
type Align int

// Text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing target of the CV layout. Coordinates are millimetres
// from the top-left corner of the page, text y is the baseline.
//
// Implementations keep the first error they hit and report it through Err;
// drawing calls after an error are no-ops.
type Surface interface {
	AddPage()
	SetPage(n int)
	PageCount() int
	PageSize() (width, height float64)
	SetFont(style FontStyle, size float64)
	SetDrawColor(r, g, b int)
	Text(x, y float64, s string, align Align)
	Line(x1, y1, x2, y2 float64)
	TextWidth(s string) float64
	Err() error
	Output(w io.Writer) error
}

// Metadata is written into the document information dictionary.
type Metadata struct {
	Title     string
	Author    string
	CreatedAt time.Time
}
