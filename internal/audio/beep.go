package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/skyshooter/internal/config"
)

const (
	jumpDuration  = 180 * time.Millisecond
	deathDuration = 700 * time.Millisecond
)

// Beep plays synthesized cues through the system speaker.
type Beep struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	theme  *beep.Ctrl
	closed bool
}

// Compile-time check that Beep implements Player.
var _ Player = (*Beep)(nil)

// NewBeep opens the speaker. Callers fall back to Nop on error.
func NewBeep(cfg config.AudioConfig) (*Beep, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	b := &Beep{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *Beep) gain(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: b.volume}
}

// add puts s on the mixer. The mixer is read by the speaker goroutine.
func (b *Beep) add(s beep.Streamer) {
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// Jump plays a short rising chirp.
func (b *Beep) Jump() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.add(b.gain(beep.Take(b.rate.N(jumpDuration), NewSweep(b.rate, 440, 880, jumpDuration))))
}

// Death plays a falling tone.
func (b *Beep) Death() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.add(b.gain(beep.Take(b.rate.N(deathDuration), NewSweep(b.rate, 330, 55, deathDuration))))
}

// PlayTheme starts the background theme, or resumes it when paused.
func (b *Beep) PlayTheme() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	if b.theme != nil {
		speaker.Lock()
		b.theme.Paused = false
		speaker.Unlock()
		return
	}
	b.theme = &beep.Ctrl{Streamer: b.gain(NewTheme(b.rate))}
	b.add(b.theme)
}

// PauseTheme pauses the theme. PlayTheme resumes it.
func (b *Beep) PauseTheme() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.theme == nil {
		return
	}
	speaker.Lock()
	b.theme.Paused = true
	speaker.Unlock()
}

// Close stops every sound and releases the speaker.
func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	speaker.Clear()
	speaker.Close()
}
