package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/match"
	"github.com/tomz197/airhockey/internal/physics"
)

func newController(t *testing.T) *match.Controller {
	t.Helper()
	c, err := match.New(config.Default())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

func TestSimulateTraces(t *testing.T) {
	c := newController(t)
	res := simulate(c, 600, 16*time.Millisecond, rand.New(rand.NewSource(1)))

	if len(res.Speed) != 600 || len(res.Energy) != 600 {
		t.Fatalf("expected one sample per tick, got %d speed and %d energy", len(res.Speed), len(res.Energy))
	}
	if res.Final.Tick != 600 {
		t.Errorf("expected 600 ticks, got %d", res.Final.Tick)
	}
	if got := res.Final.Scores.Player1 + res.Final.Scores.Player2; got != len(res.Goals) {
		t.Errorf("scores add up to %d but %d goals were reported", got, len(res.Goals))
	}

	r := c.Rink()
	for k, b := range res.Final.Bodies {
		if !r.Contains(b.Pos, b.Radius()-0.5) {
			t.Errorf("body %v ended outside the rink at %v", physics.Kind(k), b.Pos)
		}
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	c := newController(t)
	a := simulate(c, 300, 16*time.Millisecond, rand.New(rand.NewSource(7)))
	b := simulate(c, 300, 16*time.Millisecond, rand.New(rand.NewSource(7)))

	if a.Final != b.Final {
		t.Error("same seed should produce the same match")
	}
}

func TestServe(t *testing.T) {
	c := newController(t)
	rng := rand.New(rand.NewSource(3))
	for _i := 0; _i < 50; _i++ {
		s := c.NewState()
		serve(&s, rng)
		v := s.Puck().Vel
		if d := s.Puck().Speed() - serveSpeed; d > 1e-9 || d < -1e-9 {
			t.Fatalf("serve speed %f, want %f", s.Puck().Speed(), serveSpeed)
		}
		if v.X == 0 || abs(v.Y) > abs(v.X)+1e-9 {
			t.Fatalf("serve %v should be within 45 degrees of horizontal", v)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
