package object

// Level is the difficulty level shared by the entities. It starts at 1 and
// only goes up. The score tick is its only writer.
type Level struct {
	value int
}

// NewLevel returns a level of 1.
func NewLevel() *Level {
	return &Level{value: 1}
}

// Value returns the current level.
func (l *Level) Value() int { return l.value }

// Advance raises the level by one and returns the new value.
func (l *Level) Advance() int {
	l.value++
	return l.value
}

// Speed returns the level as an entity speed.
func (l *Level) Speed() float64 { return float64(l.value) }

// Gravity returns the per-tick acceleration applied to the ship at level.
// Level 1 falls slowly, levels 2 to 4 scale with the level and anything
// above is capped at three times base.
func Gravity(level int, base float64) float64 {
	switch {
	case level <= 1:
		return base
	case level <= 4:
		return base * float64(level-1)
	default:
		return base * 3
	}
}
