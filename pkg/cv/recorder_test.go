package cv

import (
	"errors"
	"io"
	"unicode/utf8"
)

type textOp struct {
	page  int
	x, y  float64
	text  string
	style FontStyle
	size  float64
	align Align
}

type lineOp struct {
	page           int
	x1, y1, x2, y2 float64
}

// recorder is a Surface that keeps every drawing call.
type recorder struct {
	width, height float64
	pages         int
	current       int
	style         FontStyle
	size          float64
	texts         []textOp
	lines         []lineOp
	failOnText    string
	failOnOutput  bool
	err           error
}

func newRecorder() *recorder {
	return &recorder{width: 210, height: 297}
}

func (r *recorder) AddPage() {
	r.pages++
	r.current = r.pages
}

func (r *recorder) SetPage(n int) { r.current = n }

func (r *recorder) PageCount() int { return r.pages }

func (r *recorder) PageSize() (float64, float64) { return r.width, r.height }

func (r *recorder) SetDrawColor(_, _, _ int) {}

func (r *recorder) Err() error { return r.err }

func (r *recorder) SetFont(style FontStyle, size float64) { r.style, r.size = style, size }

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, lineOp{page: r.current, x1: x1, y1: y1, x2: x2, y2: y2})
}

func (r *recorder) Text(x, y float64, s string, align Align) {
	if r.err != nil {
		return
	}
	if r.failOnText != "" && s == r.failOnText {
		r.err = errors.New("glyph table exhausted")
		return
	}
	r.texts = append(r.texts, textOp{page: r.current, x: x, y: y, text: s, style: r.style, size: r.size, align: align})
}

// TextWidth approximates Helvetica at roughly half an em per rune.
func (r *recorder) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.size * 0.18
}

func (r *recorder) Output(w io.Writer) error {
	if r.failOnOutput {
		return errors.New("disk full")
	}
	_, err := io.WriteString(w, "%RECORDED")
	return err
}

func (r *recorder) find(text string) (textOp, bool) {
	for _, op := range r.texts {
		if op.text == text {
			return op, true
		}
	}
	return textOp{}, false
}

func (r *recorder) index(text string) int {
	for i, op := range r.texts {
		if op.text == text {
			return i
		}
	}
	return -1
}
