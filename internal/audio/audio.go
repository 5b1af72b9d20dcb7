// Package audio plays the game's sound cues.
package audio

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Jump()
	Death()
	PlayTheme()
	PauseTheme()
	Close()
}

// Nop is a Player that plays nothing. SSH sessions and hosts without an
// audio device use it.
type Nop struct{}

func (Nop) Jump()       {}
func (Nop) Death()      {}
func (Nop) PlayTheme()  {}
func (Nop) PauseTheme() {}
func (Nop) Close()      {}
