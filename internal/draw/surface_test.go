package draw

import (
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func testOptions() TerminalOptions {
	return TerminalOptions{
		LogicalWidth:  100,
		LogicalHeight: 50,
		MinCols:       20,
		MinRows:       10,
		MaxCols:       100,
		MaxRows:       50,
	}
}

func TestTerminalTooSmallIsUnsupported(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, fixedSize(10, 5), testOptions())

	_, err := term.Layers()
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Expected ErrUnsupported, got %v", err)
	}
}

func TestTerminalSizeErrorIsUnsupported(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, func() (int, int, error) { return 0, 0, errors.New("not a tty") }, testOptions())

	if _, err := term.Layers(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Expected ErrUnsupported, got %v", err)
	}
}

func TestTerminalPresentWritesOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, fixedSize(100, 50), testOptions())

	layers, err := term.Layers()
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}
	out.Reset()

	img := NewImage("dot", []string{"*"}, 3, 1, 1)
	layers.Main.DrawImage(img, 5, 5)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	first := out.String()
	if !strings.Contains(first, "*") {
		t.Fatalf("Expected first frame to contain the sprite, got %q", first)
	}
	if !strings.Contains(first, "\033[6;6H") {
		t.Errorf("Expected cursor move to row 6 col 6, got %q", first)
	}

	out.Reset()
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected unchanged frame to write nothing, got %q", out.String())
	}

	out.Reset()
	layers.Main.ClearRect(5, 5, 1, 1)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if got := out.String(); got != "\033[6;6H " {
		t.Errorf("Expected a single erase, got %q", got)
	}
}

func TestTerminalCompositeOrder(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, fixedSize(100, 50), testOptions())
	layers, err := term.Layers()
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}

	layers.Background.DrawImage(NewImage("bg", []string{"."}, 1, 1, 1), 0, 0)
	layers.Main.DrawImage(NewImage("cloud", []string{"c"}, 2, 1, 1), 0, 0)
	if got := term.composite(0).Ch; got != 'c' {
		t.Errorf("Expected projectile layer over background, got %q", got)
	}

	layers.Ship.DrawImage(NewImage("ship", []string{"s"}, 3, 1, 1), 0, 0)
	if got := term.composite(0).Ch; got != 's' {
		t.Errorf("Expected ship layer on top, got %q", got)
	}

	layers.Ship.ClearRect(0, 0, 1, 1)
	layers.Main.ClearRect(0, 0, 1, 1)
	if got := term.composite(0).Ch; got != '.' {
		t.Errorf("Expected background after clearing upper layers, got %q", got)
	}
}

func TestTerminalCentersLargeScreens(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, fixedSize(120, 60), testOptions())
	if _, err := term.Layers(); err != nil {
		t.Fatalf("Layers: %v", err)
	}
	if term.cols != 100 || term.rows != 50 {
		t.Errorf("Expected play area clamped to 100x50, got %dx%d", term.cols, term.rows)
	}
	if !strings.Contains(out.String(), "┌") {
		t.Error("Expected a border around the centered play area")
	}
}

func TestPresentBeforeLayers(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{}, fixedSize(100, 50), testOptions())
	if err := term.Present(); err == nil {
		t.Error("Expected error presenting without layers")
	}
}

var cursorMove = regexp.MustCompile(`\x1b\[(\d+);(\d+)H`)

// maxCursor returns the largest row and column the output moves to.
func maxCursor(out string) (row, col int) {
	for _, m := range cursorMove.FindAllStringSubmatch(out, -1) {
		r, _ := strconv.Atoi(m[1])
		c, _ := strconv.Atoi(m[2])
		row, col = max(row, r), max(col, c)
	}
	return row, col
}

func TestPresentFollowsResize(t *testing.T) {
	var out bytes.Buffer
	width, height := 100, 50
	term := NewTerminal(&out, func() (int, int, error) { return width, height, nil }, testOptions())

	layers, err := term.Layers()
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}
	bg := layers.Background.(*Layer)

	width, height = 40, 20
	out.Reset()
	layers.Background.DrawImage(NewImage("sky", []string{"#"}, 4, 100, 50), 0, 0)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if bg.Cols() != 40 || bg.Rows() != 20 {
		t.Errorf("Expected layer resized in place to 40x20, got %dx%d", bg.Cols(), bg.Rows())
	}
	if bg.Width() != 100 || bg.Height() != 50 {
		t.Errorf("Expected logical size unchanged, got %gx%g", bg.Width(), bg.Height())
	}
	if row, col := maxCursor(out.String()); row > 20 || col > 40 {
		t.Errorf("Expected output within 40x20, cursor reached row %d col %d", row, col)
	}

	// The layout change discarded the old cells; the next frame redraws.
	out.Reset()
	layers.Background.DrawImage(NewImage("sky", []string{"#"}, 4, 100, 50), 0, 0)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if strings.Count(out.String(), "#") != 40*20 {
		t.Errorf("Expected the full resized area redrawn, got %d cells", strings.Count(out.String(), "#"))
	}
}

func TestPresentTooSmallShowsHint(t *testing.T) {
	var out bytes.Buffer
	width, height := 100, 50
	term := NewTerminal(&out, func() (int, int, error) { return width, height, nil }, testOptions())
	layers, err := term.Layers()
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}

	width, height = 10, 5
	out.Reset()
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if !strings.Contains(out.String(), "Resize to at least 20x10") {
		t.Errorf("Expected resize hint, got %q", out.String())
	}

	out.Reset()
	layers.Main.DrawImage(NewImage("dot", []string{"*"}, 3, 1, 1), 5, 5)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no frames while too small, got %q", out.String())
	}

	width, height = 100, 50
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	out.Reset()
	layers.Main.DrawImage(NewImage("dot", []string{"*"}, 3, 1, 1), 5, 5)
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if !strings.Contains(out.String(), "*") {
		t.Errorf("Expected drawing to resume after growing back, got %q", out.String())
	}
}
