package draw

import (
	"image/color"
	"math"
)

// Image is a decoded sprite. Its art is a grid of runes where a space is
// transparent; the grid is stretched over W x H logical units when drawn.
type Image struct {
	Name  string
	W, H  float64
	Color uint8 // xterm-256 palette index
	cells [][]rune
	cols  int
}

// NewImage builds an Image from art rows. Short rows are padded with
// transparent cells so every row has the width of the longest.
func NewImage(name string, rows []string, colorIndex uint8, w, h float64) *Image {
	img := &Image{Name: name, W: w, H: h, Color: colorIndex}
	for _, row := range rows {
		r := []rune(row)
		if len(r) > img.cols {
			img.cols = len(r)
		}
		img.cells = append(img.cells, r)
	}
	for i, r := range img.cells {
		for len(r) < img.cols {
			r = append(r, ' ')
		}
		img.cells[i] = r
	}
	return img
}

// Width returns the logical width.
func (i *Image) Width() float64 { return i.W }

// Height returns the logical height.
func (i *Image) Height() float64 { return i.H }

// Cols returns the number of art columns.
func (i *Image) Cols() int { return i.cols }

// Rows returns the number of art rows.
func (i *Image) Rows() int { return len(i.cells) }

// Cell returns the art rune at column c, row r, or a space outside the grid.
func (i *Image) Cell(c, r int) rune {
	if r < 0 || r >= len(i.cells) || c < 0 || c >= i.cols {
		return ' '
	}
	return i.cells[r][c]
}

// Sample returns the art rune at normalized coordinates u, v in [0,1),
// using nearest-neighbour lookup.
func (i *Image) Sample(u, v float64) rune {
	if i.cols == 0 || len(i.cells) == 0 {
		return ' '
	}
	c := int(math.Floor(u * float64(i.cols)))
	r := int(math.Floor(v * float64(len(i.cells))))
	return i.Cell(c, r)
}

// RGBA converts the sprite color to RGBA for pixel surfaces.
func (i *Image) RGBA() color.RGBA {
	return Palette(i.Color)
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ansiBase holds the 16 system colors in their xterm defaults.
var ansiBase = [16]color.RGBA{
	{0, 0, 0, 255}, {205, 0, 0, 255}, {0, 205, 0, 255}, {205, 205, 0, 255},
	{0, 0, 238, 255}, {205, 0, 205, 255}, {0, 205, 205, 255}, {229, 229, 229, 255},
	{127, 127, 127, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{92, 92, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

// Palette maps an xterm-256 index to its RGBA value.
func Palette(idx uint8) color.RGBA {
	switch {
	case idx < 16:
		return ansiBase[idx]
	case idx < 232:
		n := idx - 16
		return color.RGBA{cubeLevels[n/36], cubeLevels[(n/6)%6], cubeLevels[n%6], 255}
	default:
		g := 8 + (idx-232)*10
		return color.RGBA{g, g, g, 255}
	}
}
