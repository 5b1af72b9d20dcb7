// Package window renders the game in a desktop window with ebiten. It
// provides the same layers and key state the terminal host does, backed by
// GPU images.
package window

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tomz197/skyshooter/internal/draw"
)

// debugGlyphHeight is the line height of ebitenutil's debug font.
const debugGlyphHeight = 16

// SpriteCache rasterizes sprite art once per image. Each non-space cell
// becomes a solid block of the sprite color.
type SpriteCache struct {
	images map[*draw.Image]*ebiten.Image
}

func NewSpriteCache() *SpriteCache {
	return &SpriteCache{images: make(map[*draw.Image]*ebiten.Image)}
}

// Get returns the rasterized sprite, building it on first use.
func (c *SpriteCache) Get(img *draw.Image) *ebiten.Image {
	if e, ok := c.images[img]; ok {
		return e
	}

	w := max(int(math.Round(img.Width())), 1)
	h := max(int(math.Round(img.Height())), 1)
	e := ebiten.NewImage(w, h)
	for _, rect := range cellRects(img, w, h) {
		e.SubImage(rect).(*ebiten.Image).Fill(img.RGBA())
	}

	c.images[img] = e
	return e
}

// Len returns the number of cached sprites.
func (c *SpriteCache) Len() int { return len(c.images) }

// cellRects returns the pixel rectangle of every opaque art cell when the
// art is stretched over w x h pixels.
func cellRects(img *draw.Image, w, h int) []image.Rectangle {
	cols, rows := img.Cols(), img.Rows()
	if cols == 0 || rows == 0 {
		return nil
	}

	var rects []image.Rectangle
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if img.Cell(c, r) == ' ' {
				continue
			}
			rect := image.Rect(c*w/cols, r*h/rows, (c+1)*w/cols, (r+1)*h/rows)
			if rect.Empty() {
				continue
			}
			rects = append(rects, rect)
		}
	}
	return rects
}

// Layer is a draw.Target backed by an offscreen ebiten image. One logical
// unit is one pixel.
type Layer struct {
	img   *ebiten.Image
	cache *SpriteCache
}

// Compile-time check that Layer implements draw.Target.
var _ draw.Target = (*Layer)(nil)

func NewLayer(width, height int, cache *SpriteCache) *Layer {
	return &Layer{img: ebiten.NewImage(width, height), cache: cache}
}

func (l *Layer) Width() float64  { return float64(l.img.Bounds().Dx()) }
func (l *Layer) Height() float64 { return float64(l.img.Bounds().Dy()) }

// Image returns the backing image.
func (l *Layer) Image() *ebiten.Image { return l.img }

func (l *Layer) DrawImage(img *draw.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	l.img.DrawImage(l.cache.Get(img), op)
}

func (l *Layer) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(l.img.Bounds())
	if r.Empty() {
		return
	}
	l.img.SubImage(r).(*ebiten.Image).Clear()
}

// FillText draws s with its baseline at y.
func (l *Layer) FillText(s string, x, y float64) {
	ebitenutil.DebugPrintAt(l.img, s, int(x), int(y)-debugGlyphHeight)
}

// pixelRect returns the smallest pixel rectangle covering the logical one.
func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
