package cv

type column int

const (
	leftColumn column = iota
	rightColumn
)

// alternator places blocks in two columns, switching column after every
// block. Each column keeps its own cursor.
type alternator struct {
	cursor [2]float64
	next   column
	top    float64
	limit  float64
	step   float64
}

func newAlternator(start, top, limit, step float64) *alternator {
	return &alternator{
		cursor: [2]float64{start, start},
		top:    top,
		limit:  limit,
		step:   step,
	}
}

// place returns where a block of the given height goes. When it would cross
// the limit the caller must start a new page: both cursors restart at top
// and the block takes the left column.
func (a *alternator) place(height float64) (col column, y float64, newPage bool) {
	col = a.next
	y = a.cursor[col]
	if y+height > a.limit {
		newPage = true
		col = leftColumn
		y = a.top
		a.cursor = [2]float64{a.top, a.top}
	}
	a.cursor[col] += a.step
	a.next = 1 - col
	return col, y, newPage
}

// bottom is the lowest cursor of the two columns.
func (a *alternator) bottom() float64 {
	return max(a.cursor[leftColumn], a.cursor[rightColumn])
}
