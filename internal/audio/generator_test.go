package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func checkRange(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
}

// TestSweepFadesToSilence verifies the sweep stays in range and goes quiet
// after its duration.
func TestSweepFadesToSilence(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewSweep(rate, 440, 880, 100*time.Millisecond)

	samples := make([][2]float64, rate.N(200*time.Millisecond))
	n, ok := s.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples ok, got %d %v", len(samples), n, ok)
	}
	checkRange(t, samples)

	nonZero := false
	for _, v := range samples[:rate.N(50*time.Millisecond)] {
		if v[0] != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("Expected audible samples at the start")
	}
	for i, v := range samples[rate.N(100*time.Millisecond):] {
		if v[0] != 0 {
			t.Fatalf("Expected silence after duration, sample %d is %f", i, v[0])
		}
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got: %v", s.Err())
	}
}

// TestSweepTake verifies beep.Take ends the cue.
func TestSweepTake(t *testing.T) {
	rate := beep.SampleRate(8000)
	cue := beep.Take(rate.N(jumpDuration), NewSweep(rate, 440, 880, jumpDuration))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := cue.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(jumpDuration) {
		t.Errorf("Expected %d samples, got %d", rate.N(jumpDuration), total)
	}
}

// TestThemeIsEndless verifies the theme never ends and stays in range.
func TestThemeIsEndless(t *testing.T) {
	rate := beep.SampleRate(8000)
	th := NewTheme(rate)

	buf := make([][2]float64, rate.N(time.Second))
	for i := 0; i < 5; i++ {
		n, ok := th.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Expected endless stream, got n=%d ok=%v", n, ok)
		}
		checkRange(t, buf)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlayTheme()
	p.Jump()
	p.Death()
	p.PauseTheme()
	p.Close()
}
