package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func newTestTracker(hold time.Duration) (*Tracker, *time.Time) {
	now := time.Unix(1000, 0)
	tr := NewTracker(&Stream{ch: make(chan byte, 16)}, hold)
	tr.now = func() time.Time { return now }
	return tr, &now
}

func TestFeedArrowSequences(t *testing.T) {
	tr, now := newTestTracker(100 * time.Millisecond)

	tr.Feed([]byte("\x1b[A\x1b[C"), *now)

	if !tr.Held(KeyUp) {
		t.Error("Expected up to be held")
	}
	if !tr.Held(KeyRight) {
		t.Error("Expected right to be held")
	}
	if tr.Held(KeyDown) || tr.Held(KeyLeft) || tr.Held(KeySpace) {
		t.Error("Expected other keys to be released")
	}
}

func TestFeedAliases(t *testing.T) {
	cases := map[string]Key{
		"w": KeyUp, "I": KeyUp,
		"s": KeyDown, "k": KeyDown,
		"a": KeyLeft, "J": KeyLeft,
		"d": KeyRight, "l": KeyRight,
		" ": KeySpace,
	}
	for in, want := range cases {
		tr, now := newTestTracker(0)
		tr.Feed([]byte(in), *now)
		if !tr.Held(want) {
			t.Errorf("%q: expected %v held", in, want)
		}
	}
}

func TestHeldExpires(t *testing.T) {
	tr, now := newTestTracker(100 * time.Millisecond)
	tr.Feed([]byte("w"), *now)

	*now = now.Add(99 * time.Millisecond)
	if !tr.Held(KeyUp) {
		t.Error("Expected up held inside hold window")
	}
	*now = now.Add(time.Millisecond)
	if tr.Held(KeyUp) {
		t.Error("Expected up released after hold window")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, in := range []string{"q", "Q", "\x03"} {
		tr, now := newTestTracker(0)
		tr.Feed([]byte(in), *now)
		if !tr.Quit() {
			t.Errorf("%q: expected quit", in)
		}
	}
}

func TestPollDrainsStream(t *testing.T) {
	tr, _ := newTestTracker(0)
	tr.stream.ch <- ' '
	tr.stream.ch <- 'w'

	tr.Poll()

	if !tr.Held(KeySpace) || !tr.Held(KeyUp) {
		t.Error("Expected polled keys to be held")
	}
	if len(tr.stream.ch) != 0 {
		t.Errorf("Expected empty channel, got %d bytes", len(tr.stream.ch))
	}
}

func TestStreamCloseQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))
	tr := NewTracker(s, 0)

	deadline := time.Now().Add(time.Second)
	for !tr.Quit() && time.Now().Before(deadline) {
		tr.Poll()
		time.Sleep(time.Millisecond)
	}
	if !tr.Quit() {
		t.Fatal("Expected closed stream to report quit")
	}
}

func TestWaitKeyDiscardsPending(t *testing.T) {
	tr, now := newTestTracker(0)
	tr.Feed([]byte("w"), *now)
	tr.stream.ch <- 'x'

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := tr.WaitKey(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected pending byte to be discarded and wait to time out, got %v", err)
	}
}

func TestWaitKeyReturnsOnKey(t *testing.T) {
	tr, now := newTestTracker(0)
	tr.Feed([]byte("w"), *now)

	go func() {
		time.Sleep(5 * time.Millisecond)
		tr.stream.ch <- ' '
	}()
	if err := tr.WaitKey(context.Background()); err != nil {
		t.Fatalf("WaitKey: %v", err)
	}
	if tr.Held(KeyUp) {
		t.Error("Expected held state cleared after WaitKey")
	}
}

func TestWaitKeyStreamClosed(t *testing.T) {
	tr, _ := newTestTracker(0)
	close(tr.stream.ch)
	if err := tr.WaitKey(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected io.EOF, got %v", err)
	}
	if !tr.Quit() {
		t.Error("Expected quit after stream closed")
	}
}

func TestWaitKeyIgnoresHeldKeyRepeat(t *testing.T) {
	tr, _ := newTestTracker(0)
	for _, b := range []byte("www\x1b[A\x1b[Ax") {
		tr.stream.ch <- b
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	go func() {
		time.Sleep(5 * time.Millisecond)
		for _, b := range []byte("wwdd") {
			tr.stream.ch <- b
		}
	}()
	if err := tr.WaitKey(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected movement repeats not to dismiss, got %v", err)
	}
}

func TestWaitKeyQuitKey(t *testing.T) {
	tr, _ := newTestTracker(0)

	go func() {
		time.Sleep(5 * time.Millisecond)
		tr.stream.ch <- 'w'
		tr.stream.ch <- 'q'
	}()
	if err := tr.WaitKey(context.Background()); err != nil {
		t.Fatalf("WaitKey: %v", err)
	}
	if !tr.Quit() {
		t.Error("Expected q to dismiss the wait and request quit")
	}
}

func TestWaitKeyEnter(t *testing.T) {
	tr, _ := newTestTracker(0)

	go func() {
		time.Sleep(5 * time.Millisecond)
		tr.stream.ch <- '\r'
	}()
	if err := tr.WaitKey(context.Background()); err != nil {
		t.Fatalf("WaitKey: %v", err)
	}
	if tr.Quit() {
		t.Error("Expected Enter to play again, not quit")
	}
}
