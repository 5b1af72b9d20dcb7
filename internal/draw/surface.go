package draw

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// TerminalOptions sizes the terminal surface.
type TerminalOptions struct {
	LogicalWidth  float64
	LogicalHeight float64
	MinCols       int // Terminals smaller than MinCols x MinRows are unsupported
	MinRows       int
	MaxCols       int // Zero means no limit
	MaxRows       int
}

// Terminal is a Surface that composites three cell layers into ANSI output.
// Only cells that changed since the previous Present are written, which
// keeps SSH sessions cheap when little moves.
type Terminal struct {
	out      *ChunkWriter
	sizeFunc TermSizeFunc
	opts     TerminalOptions

	width, height int // Full terminal size at the last layout
	cols, rows    int
	tooSmall      bool
	bg            *Layer
	main          *Layer
	ship          *Layer
	front         []Cell // What the terminal currently shows
}

// Compile-time check that Terminal implements Surface.
var _ Surface = (*Terminal)(nil)

// NewTerminal creates a terminal surface writing to w.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc, opts TerminalOptions) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &Terminal{
		out:      NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
		opts:     opts,
	}
}

// Layers checks the terminal can hold the play area and returns three blank
// layers sized to it. The screen is cleared and, when the terminal exceeds
// the maximum play area, a border is drawn around the centered area.
func (t *Terminal) Layers() (Layers, error) {
	width, height, err := t.sizeFunc()
	if err != nil {
		return Layers{}, fmt.Errorf("%w: query terminal size: %v", ErrUnsupported, err)
	}
	if !t.fits(width, height) {
		return Layers{}, fmt.Errorf("%w: terminal is %dx%d, need at least %dx%d",
			ErrUnsupported, width, height, t.opts.MinCols, t.opts.MinRows)
	}

	t.bg = NewLayer(1, 1, t.opts.LogicalWidth, t.opts.LogicalHeight)
	t.main = NewLayer(1, 1, t.opts.LogicalWidth, t.opts.LogicalHeight)
	t.ship = NewLayer(1, 1, t.opts.LogicalWidth, t.opts.LogicalHeight)
	if err := t.layout(width, height); err != nil {
		return Layers{}, fmt.Errorf("draw: clear terminal: %w", err)
	}

	return Layers{Background: t.bg, Ship: t.ship, Main: t.main}, nil
}

// fits reports whether a width x height terminal can hold the play area.
func (t *Terminal) fits(width, height int) bool {
	return width >= t.opts.MinCols && height >= t.opts.MinRows
}

// layout sizes the play area for a width x height terminal, resizes the
// layers in place, clears the screen and draws the border.
func (t *Terminal) layout(width, height int) error {
	cols, rows := width, height
	if t.opts.MaxCols > 0 && cols > t.opts.MaxCols {
		cols = t.opts.MaxCols
	}
	if t.opts.MaxRows > 0 && rows > t.opts.MaxRows {
		rows = t.opts.MaxRows
	}
	offsetCol := (width - cols) / 2
	offsetRow := (height - rows) / 2

	t.width, t.height = width, height
	t.cols, t.rows = cols, rows
	t.tooSmall = false
	for _, l := range []*Layer{t.bg, t.main, t.ship} {
		l.Resize(cols, rows)
	}
	t.front = make([]Cell, cols*rows)

	t.out.SetOffset(0, 0)
	t.out.ResetColor()
	t.out.HideCursor()
	t.out.ClearScreen()
	t.renderBorder(offsetCol, offsetRow)
	t.out.SetOffset(offsetCol, offsetRow)
	return t.out.Flush()
}

// Present writes every cell whose composited value changed. A terminal
// resized since the last frame is laid out again first; while it is too
// small, frames are replaced by a resize hint.
func (t *Terminal) Present() error {
	if t.bg == nil {
		return errors.New("draw: Present called before Layers")
	}

	width, height, err := t.sizeFunc()
	if err == nil && (width != t.width || height != t.height) {
		if !t.fits(width, height) {
			return t.showTooSmall(width, height)
		}
		if err := t.layout(width, height); err != nil {
			return err
		}
	}
	if t.tooSmall {
		return nil
	}

	for row := 0; row < t.rows; row++ {
		offset := row * t.cols
		for col := 0; col < t.cols; col++ {
			c := t.composite(offset + col)
			if c == t.front[offset+col] {
				continue
			}
			t.front[offset+col] = c

			t.out.MoveCursor(col+1, row+1)
			if c.Ch == 0 {
				t.out.WriteRune(' ')
				continue
			}
			t.out.SetColor(c.Color)
			t.out.WriteRune(c.Ch)
		}
	}
	return t.out.Flush()
}

// showTooSmall clears the screen once and asks the player to resize.
func (t *Terminal) showTooSmall(width, height int) error {
	t.width, t.height = width, height
	if t.tooSmall {
		return nil
	}
	t.tooSmall = true

	t.out.SetOffset(0, 0)
	t.out.ResetColor()
	t.out.ClearScreen()
	t.out.WriteAt(1, 1, fmt.Sprintf("Resize to at least %dx%d", t.opts.MinCols, t.opts.MinRows))
	return t.out.Flush()
}

// composite returns the visible cell: ship over projectiles over background.
func (t *Terminal) composite(idx int) Cell {
	if c := t.ship.cells[idx]; c.Ch != 0 {
		return c
	}
	if c := t.main.cells[idx]; c.Ch != 0 {
		return c
	}
	return t.bg.cells[idx]
}

// Notice draws a centered message box over the play area. The box is not
// part of any layer; the next Layers call clears it.
func (t *Terminal) Notice(lines ...string) error {
	if t.bg == nil {
		return errors.New("draw: Notice called before Layers")
	}
	if t.tooSmall {
		return nil
	}
	inner := 0
	for _, line := range lines {
		inner = max(inner, len([]rune(line)))
	}
	inner += 4

	top := max((t.rows-len(lines))/2-1, 1)
	left := max((t.cols-inner)/2, 1)

	t.out.ResetColor()
	t.out.WriteAt(left, top, "┌"+strings.Repeat("─", inner)+"┐")
	for i, line := range lines {
		pad := inner - len([]rune(line))
		t.out.WriteAt(left, top+1+i, "│"+strings.Repeat(" ", pad/2)+line+strings.Repeat(" ", pad-pad/2)+"│")
	}
	t.out.WriteAt(left, top+1+len(lines), "└"+strings.Repeat("─", inner)+"┘")

	// The box covers layer cells; force them to be redrawn.
	for i := range t.front {
		t.front[i] = Cell{Ch: -1}
	}
	return t.out.Flush()
}

// Close restores the terminal: default colors, visible cursor, clear screen.
func (t *Terminal) Close() error {
	t.out.SetOffset(0, 0)
	t.out.ResetColor()
	t.out.ClearScreen()
	t.out.ShowCursor()
	return t.out.Flush()
}

// renderBorder draws a box border around the play area when the terminal
// exceeds the max render resolution on either axis. Horizontal borders need
// vertical offset, vertical borders need horizontal offset.
func (t *Terminal) renderBorder(offsetCol, offsetRow int) {
	hasH := offsetCol >= 1 // Room for left/right vertical bars
	hasV := offsetRow >= 1 // Room for top/bottom horizontal bars

	left := offsetCol
	right := offsetCol + t.cols + 1
	top := offsetRow
	bottom := offsetRow + t.rows + 1

	if hasV {
		line := strings.Repeat("─", t.cols)
		if hasH {
			t.out.WriteAt(left, top, "┌"+line+"┐")
			t.out.WriteAt(left, bottom, "└"+line+"┘")
		} else {
			t.out.WriteAt(offsetCol+1, top, line)
			t.out.WriteAt(offsetCol+1, bottom, line)
		}
	}

	if hasH {
		for row := offsetRow + 1; row <= offsetRow+t.rows; row++ {
			t.out.WriteAt(left, row, "│")
			t.out.WriteAt(right, row, "│")
		}
	}
}
