package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomz197/airhockey/internal/physics"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func feedAt(s *Stream, keys string, now time.Time) Input {
	s.feed([]byte(keys), now)
	return s.build(now)
}

func TestPlayerIntents(t *testing.T) {
	tests := []struct {
		name string
		keys string
		p1   physics.Intent
		p2   physics.Intent
	}{
		{"nothing", "", physics.Intent{}, physics.Intent{}},
		{"player 1 up", "w", physics.Intent{DY: -1}, physics.Intent{}},
		{"player 1 diagonal", "sd", physics.Intent{DX: 1, DY: 1}, physics.Intent{}},
		{"player 1 opposing keys cancel", "ad", physics.Intent{}, physics.Intent{}},
		{"player 1 boost", "A", physics.Intent{DX: -1, Boost: true}, physics.Intent{}},
		{"player 2 letters", "ok", physics.Intent{}, physics.Intent{DX: -1, DY: -1}},
		{"player 2 boost colon", ":", physics.Intent{}, physics.Intent{DX: 1, Boost: true}},
		{"player 2 arrows", "\x1b[B\x1b[D", physics.Intent{}, physics.Intent{DX: -1, DY: 1}},
		{"arrows add to letters", "k\x1b[D", physics.Intent{}, physics.Intent{DX: -2}},
		{"shift arrow boosts", "\x1b[1;2C", physics.Intent{}, physics.Intent{DX: 1, Boost: true}},
		{"both players", "wl", physics.Intent{DY: -1}, physics.Intent{DY: 1}},
	}

	for _, tt := range tests {
		s := &Stream{}
		in := feedAt(s, tt.keys, t0)
		if diff := cmp.Diff(tt.p1, in.Player1); diff != "" {
			t.Errorf("%s: player 1 mismatch (-want +got):\n%s", tt.name, diff)
		}
		if diff := cmp.Diff(tt.p2, in.Player2); diff != "" {
			t.Errorf("%s: player 2 mismatch (-want +got):\n%s", tt.name, diff)
		}
		if in.Quit || in.Start {
			t.Errorf("%s: unexpected control flags %+v", tt.name, in)
		}
	}
}

func TestEscapeSequenceSplitAcrossFeeds(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		p2     physics.Intent
	}{
		{"arrow after bracket", []string{"\x1b[", "A"}, physics.Intent{DY: -1}},
		{"arrow after escape", []string{"\x1b", "[D"}, physics.Intent{DX: -1}},
		{"byte by byte", []string{"\x1b", "[", "B"}, physics.Intent{DY: 1}},
		{"shift arrow tail", []string{"\x1b[1;2", "A"}, physics.Intent{DY: -1, Boost: true}},
		{"shift arrow modifier", []string{"\x1b[1;", "2C"}, physics.Intent{DX: 1, Boost: true}},
	}

	for _, tt := range tests {
		s := &Stream{}
		var in Input
		for _, chunk := range tt.chunks {
			in = feedAt(s, chunk, t0)
		}
		if diff := cmp.Diff(physics.Intent{}, in.Player1); diff != "" {
			t.Errorf("%s: player 1 should not move (-want +got):\n%s", tt.name, diff)
		}
		if diff := cmp.Diff(tt.p2, in.Player2); diff != "" {
			t.Errorf("%s: player 2 mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestUnknownEscapeSequencesAreSwallowed(t *testing.T) {
	tests := []struct {
		name string
		keys string
	}{
		{"ctrl arrow", "\x1b[1;5A"},
		{"delete key", "\x1b[3~"},
		{"function key", "\x1b[15~"},
	}
	for _, tt := range tests {
		in := feedAt(&Stream{}, tt.keys, t0)
		if diff := cmp.Diff(physics.Intent{}, in.Player1); diff != "" {
			t.Errorf("%s: player 1 should not move (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestLoneEscapeDoesNotSwallowNextKey(t *testing.T) {
	s := &Stream{}
	feedAt(s, "\x1b", t0)
	in := feedAt(s, "w", t0)
	if diff := cmp.Diff(physics.Intent{DY: -1}, in.Player1); diff != "" {
		t.Errorf("key after a lone escape should apply (-want +got):\n%s", diff)
	}
}

func TestKeysExpireAfterHold(t *testing.T) {
	s := &Stream{}
	feedAt(s, "dW", t0)

	in := s.build(t0.Add(HoldDuration / 2))
	if diff := cmp.Diff(physics.Intent{DX: 1, DY: -1, Boost: true}, in.Player1); diff != "" {
		t.Errorf("keys should still be held (-want +got):\n%s", diff)
	}

	in = s.build(t0.Add(HoldDuration))
	if diff := cmp.Diff(physics.Intent{}, in.Player1); diff != "" {
		t.Errorf("keys should be released (-want +got):\n%s", diff)
	}
}

func TestRepeatKeepsKeyHeld(t *testing.T) {
	s := &Stream{}
	now := t0
	for _i := 0; _i < 10; _i++ {
		in := feedAt(s, "o", now)
		if in.Player2.DY != -1 {
			t.Fatalf("expected key held at %v", now.Sub(t0))
		}
		now = now.Add(HoldDuration * 3 / 4)
	}
}

func TestControlKeys(t *testing.T) {
	tests := []struct {
		keys  string
		quit  bool
		start bool
	}{
		{"q", true, false},
		{"\x03", true, false},
		{" ", false, true},
		{"\r", false, true},
		{"x", false, false},
		{"\x1b", false, false},
	}
	for _, tt := range tests {
		in := feedAt(&Stream{}, tt.keys, t0)
		if in.Quit != tt.quit || in.Start != tt.start {
			t.Errorf("%q: got quit=%v start=%v, want quit=%v start=%v", tt.keys, in.Quit, in.Start, tt.quit, tt.start)
		}
	}
}

func TestReadInputFromReader(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("wd")))

	var got []byte
	var in Input
	deadline := time.Now().Add(time.Second)
	for !in.Quit && time.Now().Before(deadline) {
		in = ReadInput(s)
		got = append(got, in.Pressed...)
		time.Sleep(time.Millisecond)
	}

	if !in.Quit {
		t.Fatal("expected quit once the reader is exhausted")
	}
	if diff := cmp.Diff([]byte("wd"), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("pressed bytes mismatch (-want +got):\n%s", diff)
	}
}
