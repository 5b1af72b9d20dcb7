package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sweep glides a sine tone from one frequency to another over a duration,
// fading out as it goes. It keeps producing silence after the duration, so
// wrap it in beep.Take.
type Sweep struct {
	rate     beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweep creates a sweep generator.
func NewSweep(rate beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{rate: rate, from: from, to: to, samples: max(rate.N(d), 1)}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		if s.pos < s.samples {
			p := float64(s.pos) / float64(s.samples)
			freq := s.from + (s.to-s.from)*p
			val = 0.3 * (1 - p) * math.Sin(2*math.Pi*s.phase)

			s.phase += freq / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error { return nil }

// themeNotes is one bar of the theme, in Hz. Zero is a rest.
var themeNotes = [...]float64{
	220.00, 261.63, 329.63, 0,
	196.00, 246.94, 293.66, 0,
	174.61, 220.00, 261.63, 0,
	196.00, 246.94, 293.66, 329.63,
}

const themeNoteLength = 250 * time.Millisecond

// Theme is an endless arpeggio over a soft bass drone.
type Theme struct {
	rate    beep.SampleRate
	noteLen int
	pos     int
	phase   float64
	bass    float64
}

// NewTheme creates the theme generator.
func NewTheme(rate beep.SampleRate) *Theme {
	return &Theme{rate: rate, noteLen: max(rate.N(themeNoteLength), 1)}
}

func (t *Theme) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := themeNotes[(t.pos/t.noteLen)%len(themeNotes)]
		within := float64(t.pos%t.noteLen) / float64(t.noteLen)

		lead := 0.0
		if note > 0 {
			lead = 0.12 * math.Exp(-within*4) * math.Sin(2*math.Pi*t.phase)
			t.phase += note / float64(t.rate)
			t.phase -= math.Floor(t.phase)
		}
		drone := 0.05 * math.Sin(2*math.Pi*t.bass)
		t.bass += 55 / float64(t.rate)
		t.bass -= math.Floor(t.bass)

		val := lead + drone
		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *Theme) Err() error { return nil }
