package loop

import (
	"testing"
	"time"
)

func TestDriverPoll(t *testing.T) {
	t0 := time.Now()
	d := NewDriver(10*time.Millisecond, t0)

	if _, due := d.Poll(t0.Add(5 * time.Millisecond)); due {
		t.Fatal("poll before the interval should not be due")
	}
	if _, due := d.Poll(t0.Add(10 * time.Millisecond)); due {
		t.Fatal("poll exactly at the interval should not be due")
	}

	elapsed, due := d.Poll(t0.Add(12 * time.Millisecond))
	if !due || elapsed != 12*time.Millisecond {
		t.Fatalf("expected due with 12ms elapsed, got %v %v", elapsed, due)
	}

	// The reference moved to the accepted poll.
	if _, due := d.Poll(t0.Add(20 * time.Millisecond)); due {
		t.Error("second poll 8ms after the accepted one should not be due")
	}
	elapsed, due = d.Poll(t0.Add(40 * time.Millisecond))
	if !due || elapsed != 28*time.Millisecond {
		t.Errorf("expected due with 28ms elapsed, got %v %v", elapsed, due)
	}
}

func TestDriverRemaining(t *testing.T) {
	t0 := time.Now()
	d := NewDriver(10*time.Millisecond, t0)

	if got := d.Remaining(t0.Add(3 * time.Millisecond)); got != 7*time.Millisecond {
		t.Errorf("expected 7ms remaining, got %v", got)
	}
	if got := d.Remaining(t0.Add(time.Second)); got != 0 {
		t.Errorf("expected nothing remaining, got %v", got)
	}

	d.Reset(t0.Add(time.Second))
	if got := d.Remaining(t0.Add(time.Second)); got != 10*time.Millisecond {
		t.Errorf("expected a full interval after reset, got %v", got)
	}
}
