// Package input turns raw terminal bytes into per-player movement intents.
// Terminals only report key presses, so a key counts as held for a short
// window after its last byte.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/airhockey/internal/physics"
)

// HoldDuration is how long a key is considered "held" after its last byte.
// Terminals only report key presses, and auto-repeat refreshes a held key
// every 30-50ms once it kicks in.
const HoldDuration = 60 * time.Millisecond

// Input represents the current tick's input state.
type Input struct {
	Quit    bool
	Start   bool
	Player1 physics.Intent
	Player2 physics.Intent
	Pressed []byte
}

// key identifies a tracked key.
type key int

const (
	keyP1Up key = iota
	keyP1Down
	keyP1Left
	keyP1Right
	keyP1Boost

	keyP2Up
	keyP2Down
	keyP2Left
	keyP2Right
	keyP2Boost

	keyArrowUp
	keyArrowDown
	keyArrowLeft
	keyArrowRight

	keyQuit
	keyStart

	numKeys
)

// keyState tracks the last time each key was seen.
type keyState struct {
	seen [numKeys]time.Time
}

func (ks *keyState) press(k key, now time.Time) {
	ks.seen[k] = now
}

func (ks *keyState) held(k key, now time.Time) bool {
	t := ks.seen[k]
	return !t.IsZero() && now.Sub(t) < HoldDuration
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func (ks *keyState) axis(neg, pos key, now time.Time) float64 {
	var v float64
	if ks.held(neg, now) {
		v--
	}
	if ks.held(pos, now) {
		v++
	}
	return v
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	closed  bool
	pending []byte // Unfinished escape sequence from the last feed
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys held at this moment.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.drain()
	s.feed(buf, now)
	in := s.build(now)
	in.Pressed = buf
	return in
}

func (s *Stream) drain() []byte {
	var buf []byte
	if s.closed {
		return buf
	}
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// feed parses raw terminal bytes and updates the key timestamps. An escape
// sequence cut off at the end of buf is kept and completed by the next feed.
func (s *Stream) feed(buf []byte, now time.Time) {
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' {
			n, complete := s.applyEscape(buf[i:], now)
			if !complete {
				s.pending = append([]byte(nil), buf[i:]...)
				return
			}
			if n > 0 {
				i += n - 1
				continue
			}
		}
		applyByteToState(&s.state, buf[i], now)
	}
}

// maxEscapeLen bounds a pending escape sequence; anything longer is dropped.
const maxEscapeLen = 16

// applyEscape consumes a CSI sequence (ESC [ params final). Arrow keys are
// applied, both plain (ESC [ A) and with a modifier (ESC [ 1 ; 2 A), where
// Shift counts as boost for player 2. Other CSI sequences are swallowed.
// It returns the bytes consumed, 0 if seq is not a CSI sequence, and
// complete=false if seq ends before the sequence does.
func (s *Stream) applyEscape(seq []byte, now time.Time) (n int, complete bool) {
	if len(seq) < 2 {
		return 0, false
	}
	if seq[1] != '[' {
		return 0, true
	}

	for i := 2; i < len(seq); i++ {
		b := seq[i]
		if b >= 0x20 && b <= 0x3f { // Parameter and intermediate bytes
			continue
		}
		if b < 0x40 || b > 0x7e {
			// Not a valid CSI final byte; drop the prefix and reparse from b.
			return i, true
		}

		params := string(seq[2:i])
		k, ok := arrowKey(b)
		if !ok {
			return i + 1, true
		}
		switch {
		case params == "" || params == "1":
			s.state.press(k, now)
		case len(params) == 3 && params[:2] == "1;":
			s.state.press(k, now)
			if params[2] == '2' {
				s.state.press(keyP2Boost, now)
			}
		}
		return i + 1, true
	}

	if len(seq) >= maxEscapeLen {
		return len(seq), true
	}
	return 0, false
}

func arrowKey(b byte) (key, bool) {
	switch b {
	case 'A':
		return keyArrowUp, true
	case 'B':
		return keyArrowDown, true
	case 'C':
		return keyArrowRight, true
	case 'D':
		return keyArrowLeft, true
	}
	return 0, false
}

// build turns the key timestamps into per-player intents. Player 2's letter keys
// and the arrow keys add onto the same axes.
func (s *Stream) build(now time.Time) Input {
	ks := &s.state
	return Input{
		Quit:  s.closed || ks.held(keyQuit, now),
		Start: ks.held(keyStart, now),
		Player1: physics.Intent{
			DX:    ks.axis(keyP1Left, keyP1Right, now),
			DY:    ks.axis(keyP1Up, keyP1Down, now),
			Boost: ks.held(keyP1Boost, now),
		},
		Player2: physics.Intent{
			DX:    ks.axis(keyP2Left, keyP2Right, now) + ks.axis(keyArrowLeft, keyArrowRight, now),
			DY:    ks.axis(keyP2Up, keyP2Down, now) + ks.axis(keyArrowUp, keyArrowDown, now),
			Boost: ks.held(keyP2Boost, now),
		},
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
// A shifted movement key also holds its player's boost.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.press(keyQuit, now)
	case ' ', '\n', '\r':
		state.press(keyStart, now)

	case 'w':
		state.press(keyP1Up, now)
	case 's':
		state.press(keyP1Down, now)
	case 'a':
		state.press(keyP1Left, now)
	case 'd':
		state.press(keyP1Right, now)
	case 'W':
		state.press(keyP1Up, now)
		state.press(keyP1Boost, now)
	case 'S':
		state.press(keyP1Down, now)
		state.press(keyP1Boost, now)
	case 'A':
		state.press(keyP1Left, now)
		state.press(keyP1Boost, now)
	case 'D':
		state.press(keyP1Right, now)
		state.press(keyP1Boost, now)

	case 'o':
		state.press(keyP2Up, now)
	case 'l':
		state.press(keyP2Down, now)
	case 'k':
		state.press(keyP2Left, now)
	case ';':
		state.press(keyP2Right, now)
	case 'O':
		state.press(keyP2Up, now)
		state.press(keyP2Boost, now)
	case 'L':
		state.press(keyP2Down, now)
		state.press(keyP2Boost, now)
	case 'K':
		state.press(keyP2Left, now)
		state.press(keyP2Boost, now)
	case ':':
		state.press(keyP2Right, now)
		state.press(keyP2Boost, now)
	}
}
