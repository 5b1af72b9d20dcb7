package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(func() time.Time { return start })

	var order []string
	s.Add("a", 10*time.Millisecond, func(time.Time) { order = append(order, "a") })
	s.Add("b", 20*time.Millisecond, func(time.Time) { order = append(order, "b") })

	s.Step(start.Add(5 * time.Millisecond))
	if len(order) != 0 {
		t.Fatalf("Expected nothing due at 5ms, got %v", order)
	}

	s.Step(start.Add(10 * time.Millisecond))
	s.Step(start.Add(20 * time.Millisecond))
	want := []string{"a", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
}

func TestSchedulerSkipsMissedTicks(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(func() time.Time { return start })

	runs := 0
	s.Add("physics", 10*time.Millisecond, func(time.Time) { runs++ })

	// 55ms late: one run, not five.
	s.Step(start.Add(55 * time.Millisecond))
	if runs != 1 {
		t.Fatalf("Expected one run after a stall, got %d", runs)
	}
	if want := start.Add(65 * time.Millisecond); !s.Next().Equal(want) {
		t.Errorf("Expected next deadline %v, got %v", want, s.Next())
	}

	s.Step(start.Add(60 * time.Millisecond))
	if runs != 1 {
		t.Errorf("Expected no run before the new deadline, got %d", runs)
	}
	s.Step(start.Add(65 * time.Millisecond))
	if runs != 2 {
		t.Errorf("Expected a run at the new deadline, got %d", runs)
	}
}

func TestSchedulerKeepsCadenceWhenSlightlyLate(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(func() time.Time { return start })
	s.Add("score", 50*time.Millisecond, func(time.Time) {})

	s.Step(start.Add(53 * time.Millisecond))
	if want := start.Add(100 * time.Millisecond); !s.Next().Equal(want) {
		t.Errorf("Expected deadline to stay on the 50ms grid at %v, got %v", want, s.Next())
	}
}

func TestSchedulerStopFromTask(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(func() time.Time { return start })

	second := false
	s.Add("first", time.Millisecond, func(time.Time) { s.Stop() })
	s.Add("second", time.Millisecond, func(time.Time) { second = true })

	s.Step(start.Add(time.Millisecond))
	if !s.Stopped() {
		t.Fatal("Expected scheduler to be stopped")
	}
	if second {
		t.Error("Expected tasks after Stop not to run")
	}
}

func TestSchedulerRunUntilStop(t *testing.T) {
	s := NewScheduler(nil)
	runs := 0
	s.Add("tick", time.Millisecond, func(time.Time) {
		runs++
		if runs == 3 {
			s.Stop()
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if runs != 3 {
		t.Errorf("Expected 3 runs, got %d", runs)
	}
}

func TestSchedulerRunCanceled(t *testing.T) {
	s := NewScheduler(nil)
	s.Add("tick", time.Hour, func(time.Time) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}
