package draw

import "math"

// TextColor is the palette index used for FillText.
const TextColor = 15

// Cell is one terminal character on a layer. A zero Ch is transparent.
type Cell struct {
	Ch    rune
	Color uint8
}

// Layer is a terminal-cell drawing target. Game objects draw in logical
// coordinates which are scaled to the layer's columns and rows.
type Layer struct {
	cols  int
	rows  int
	cells []Cell // Flat slice: [row * cols + col]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // cols / logicalWidth
	scaleY        float64 // rows / logicalHeight
}

// NewLayer creates a blank layer of cols x rows cells covering a logical
// area of logicalWidth x logicalHeight.
func NewLayer(cols, rows int, logicalWidth, logicalHeight float64) *Layer {
	return &Layer{
		cols:          cols,
		rows:          rows,
		cells:         make([]Cell, cols*rows),
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		scaleX:        float64(cols) / logicalWidth,
		scaleY:        float64(rows) / logicalHeight,
	}
}

// Width returns the logical width.
func (l *Layer) Width() float64 { return l.logicalWidth }

// Height returns the logical height.
func (l *Layer) Height() float64 { return l.logicalHeight }

// Cols returns the number of cell columns.
func (l *Layer) Cols() int { return l.cols }

// Rows returns the number of cell rows.
func (l *Layer) Rows() int { return l.rows }

// At returns the cell at col, row. Out of range cells are transparent.
func (l *Layer) At(col, row int) Cell {
	if col < 0 || col >= l.cols || row < 0 || row >= l.rows {
		return Cell{}
	}
	return l.cells[row*l.cols+col]
}

// set writes a cell at actual cell coordinates (no scaling).
func (l *Layer) set(col, row int, c Cell) {
	if col >= 0 && col < l.cols && row >= 0 && row < l.rows {
		l.cells[row*l.cols+col] = c
	}
}

// span converts a logical interval to a half-open cell interval. Drawing and
// clearing use the same conversion, so clearing an image's rectangle at the
// position it was drawn removes exactly the cells it covered.
func span(pos, size, scale float64) (start, end int) {
	start = int(math.Round(pos * scale))
	end = int(math.Round((pos + size) * scale))
	if end <= start && size > 0 {
		end = start + 1
	}
	return start, end
}

// DrawImage stamps img with its top-left corner at logical (x, y).
// Transparent art cells leave the layer untouched.
func (l *Layer) DrawImage(img *Image, x, y float64) {
	c0, c1 := span(x, img.W, l.scaleX)
	r0, r1 := span(y, img.H, l.scaleY)
	w := float64(c1 - c0)
	h := float64(r1 - r0)

	for row := max(r0, 0); row < min(r1, l.rows); row++ {
		v := (float64(row-r0) + 0.5) / h
		for col := max(c0, 0); col < min(c1, l.cols); col++ {
			u := (float64(col-c0) + 0.5) / w
			ch := img.Sample(u, v)
			if ch == ' ' {
				continue
			}
			l.cells[row*l.cols+col] = Cell{Ch: ch, Color: img.Color}
		}
	}
}

// ClearRect makes the logical rectangle transparent.
func (l *Layer) ClearRect(x, y, w, h float64) {
	c0, c1 := span(x, w, l.scaleX)
	r0, r1 := span(y, h, l.scaleY)
	lo, hi := max(c0, 0), min(c1, l.cols)
	if lo >= hi {
		return
	}
	for row := max(r0, 0); row < min(r1, l.rows); row++ {
		offset := row * l.cols
		clear(l.cells[offset+lo : offset+hi])
	}
}

// FillText writes s with its baseline at logical y, the way a 2D canvas
// places text: the glyph row sits just above the baseline.
func (l *Layer) FillText(s string, x, y float64) {
	col := int(math.Round(x * l.scaleX))
	row := int(math.Round(y*l.scaleY)) - 1
	if row < 0 {
		row = 0
	}
	for i, ch := range []rune(s) {
		l.set(col+i, row, Cell{Ch: ch, Color: TextColor})
	}
}

// Clear resets every cell.
func (l *Layer) Clear() {
	clear(l.cells)
}

// LogicalToCell converts logical coordinates to 0-based cell coordinates.
func (l *Layer) LogicalToCell(x, y float64) (col, row int) {
	return int(math.Round(x * l.scaleX)), int(math.Round(y * l.scaleY))
}

// Resize changes the layer to cols x rows cells over the same logical area.
// Contents are discarded; callers redraw on the next frame.
func (l *Layer) Resize(cols, rows int) {
	l.cols, l.rows = cols, rows
	l.cells = make([]Cell, cols*rows)
	l.scaleX = float64(cols) / l.logicalWidth
	l.scaleY = float64(rows) / l.logicalHeight
}
