package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyshooter/internal/input"
)

// keyBindings maps each game key to the physical keys that hold it.
var keyBindings = map[input.Key][]ebiten.Key{
	input.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyI},
	input.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyK},
	input.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyJ},
	input.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
	input.KeySpace: {ebiten.KeySpace},
}

// Keys reads key state straight from ebiten. Quit is Escape or Q.
type Keys struct{}

// Compile-time check that Keys implements input.Source.
var _ input.Source = Keys{}

func (Keys) Poll() {}

func (Keys) Held(k input.Key) bool {
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (Keys) Quit() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
}
