// Package input turns key events into "currently held" state.
package input

import (
	"context"
	"io"
	"time"
)

// Key is one of the keys the game reads.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	keyCount
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	default:
		return "unknown"
	}
}

// KeyStatus reports which keys are held. Game code only reads it.
type KeyStatus interface {
	Held(k Key) bool
}

// Source is a KeyStatus the host refreshes once per frame.
type Source interface {
	KeyStatus
	// Poll folds events received since the last call into the held state.
	Poll()
	// Quit reports whether the player asked to leave.
	Quit() bool
}

// DefaultHoldDuration is how long a key is considered "held" after its last
// byte. Terminals send no key-up events, only auto-repeat bytes.
const DefaultHoldDuration = 120 * time.Millisecond

// Stream delivers input bytes via a channel.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel closes when r returns an error.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Tracker is the terminal Source: it drains a Stream and keeps the time
// each key was last seen.
type Tracker struct {
	stream *Stream
	hold   time.Duration
	now    func() time.Time

	last   [keyCount]time.Time
	quit   bool
	closed bool
	buf    []byte
}

// Compile-time check that Tracker implements Source.
var _ Source = (*Tracker)(nil)

// NewTracker creates a tracker over s. A non-positive hold uses DefaultHoldDuration.
func NewTracker(s *Stream, hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Tracker{stream: s, hold: hold, now: time.Now}
}

// Poll drains all available bytes from the stream (non-blocking).
func (t *Tracker) Poll() {
	t.buf = t.buf[:0]
	for {
		select {
		case b, ok := <-t.stream.ch:
			if !ok {
				t.closed = true
				t.quit = true
				t.Feed(t.buf, t.now())
				return
			}
			t.buf = append(t.buf, b)
		default:
			t.Feed(t.buf, t.now())
			return
		}
	}
}

// Feed applies raw terminal bytes received at now. Arrow keys arrive as
// CSI sequences (ESC [ A..D); WASD and IJKL are accepted as aliases.
func (t *Tracker) Feed(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				t.last[KeyUp] = now
			case 'B':
				t.last[KeyDown] = now
			case 'C':
				t.last[KeyRight] = now
			case 'D':
				t.last[KeyLeft] = now
			}
			i += 2
			continue
		}

		switch b {
		case 'w', 'W', 'i', 'I':
			t.last[KeyUp] = now
		case 's', 'S', 'k', 'K':
			t.last[KeyDown] = now
		case 'a', 'A', 'j', 'J':
			t.last[KeyLeft] = now
		case 'd', 'D', 'l', 'L':
			t.last[KeyRight] = now
		case ' ':
			t.last[KeySpace] = now
		case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
			t.quit = true
		}
	}
}

// Held reports whether k was seen within the hold duration.
func (t *Tracker) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	last := t.last[k]
	return !last.IsZero() && t.now().Sub(last) < t.hold
}

// Quit reports whether q or Ctrl+C was pressed or the stream ended.
func (t *Tracker) Quit() bool {
	return t.quit
}

// WaitKey discards pending bytes, then blocks until Space, Enter, q or
// Ctrl+C arrives, the stream ends or ctx is done. Other bytes, such as the
// auto-repeat of a key held at the moment of death, are ignored. Held state
// is cleared so a key that was down before the wait does not leak into the
// next game.
func (t *Tracker) WaitKey(ctx context.Context) error {
	for {
		select {
		case _, ok := <-t.stream.ch:
			if !ok {
				t.closed = true
				t.quit = true
				return io.EOF
			}
			continue
		default:
		}
		break
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, ok := <-t.stream.ch:
			if !ok {
				t.closed = true
				t.quit = true
				return io.EOF
			}
			switch b {
			case 'q', 'Q', 0x03:
				t.quit = true
			case ' ', '\r', '\n':
			default:
				continue
			}
		}
		t.last = [keyCount]time.Time{}
		return nil
	}
}
