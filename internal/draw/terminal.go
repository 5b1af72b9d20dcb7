package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical 1500 byte MTU for smooth SSH/network transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Use MoveCursor, SetColor, WriteRune to accumulate,
// then Flush to write to the underlying writer.
type ChunkWriter struct {
	buf     strings.Builder
	bufw    *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf  [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol  int
	offRow  int
	color   int // Last foreground color written, -1 when unknown
	lastCol int // Cursor position after the last write, 0 when unknown
	lastRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for play area centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
		color:  -1,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
	cw.lastCol, cw.lastRow = 0, 0
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically. The sequence is
// skipped when the cursor already sits there after the previous rune.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	if col == cw.lastCol && row == cw.lastRow {
		return
	}
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
	cw.lastCol, cw.lastRow = col, row
}

// SetColor selects an xterm-256 foreground color if it differs from the
// color of the previous write.
func (cw *ChunkWriter) SetColor(c uint8) {
	if cw.color == int(c) {
		return
	}
	cw.buf.WriteString("\033[38;5;")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c), 10))
	cw.buf.WriteByte('m')
	cw.color = int(c)
}

// ResetColor restores the terminal default attributes.
func (cw *ChunkWriter) ResetColor() {
	cw.buf.WriteString("\033[0m")
	cw.color = -1
}

// Write implements io.Writer. Raw writes invalidate cursor tracking.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	cw.lastCol, cw.lastRow = 0, 0
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.lastCol, cw.lastRow = 0, 0
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a specific position. col and row are 1-based canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.WriteString(s)
}

// WriteRune appends a single-width rune; the tracked cursor advances by one.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
	if cw.lastCol != 0 {
		cw.lastCol++
	}
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen appends a clear-screen sequence and homes the cursor.
func (cw *ChunkWriter) ClearScreen() {
	cw.WriteString("\033[H\033[2J")
}

// HideCursor appends the hide-cursor sequence.
func (cw *ChunkWriter) HideCursor() {
	cw.WriteString("\033[?25l")
}

// ShowCursor appends the show-cursor sequence.
func (cw *ChunkWriter) ShowCursor() {
	cw.WriteString("\033[?25h")
}
