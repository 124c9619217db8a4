package match

import (
	"github.com/tomz197/airhockey/internal/physics"
	"github.com/tomz197/airhockey/internal/vmath"
)

// Scores holds the goal count of each player.
type Scores struct {
	Player1 int
	Player2 int
}

// Add credits one goal to the given player. Non-player kinds are ignored.
func (s *Scores) Add(scorer physics.Kind) {
	switch scorer {
	case physics.Player1:
		s.Player1++
	case physics.Player2:
		s.Player2++
	}
}

// State is a snapshot of a match between ticks. It is a plain value: Tick
// returns a new State and never retains the one it was given.
type State struct {
	Bodies [physics.NumKinds]physics.Body // Indexed by physics.Kind
	Scores Scores
	Tick   uint64 // Number of ticks run so far
}

// Body returns the body of the given kind.
func (s State) Body(k physics.Kind) physics.Body {
	return s.Bodies[k]
}

func (s State) Player1() physics.Body { return s.Bodies[physics.Player1] }
func (s State) Player2() physics.Body { return s.Bodies[physics.Player2] }
func (s State) Puck() physics.Body    { return s.Bodies[physics.Puck] }

// Inputs are the movement intents of both players for one tick.
type Inputs struct {
	Player1 physics.Intent
	Player2 physics.Intent
}

// EventKind classifies something that happened inside a tick.
type EventKind int

const (
	EventGoal EventKind = iota
)

func (k EventKind) String() string {
	switch k {
	case EventGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Event is reported by Tick so renderers and loggers can react without
// observing intermediate state.
type Event struct {
	Kind   EventKind
	Scorer physics.Kind
	At     vmath.Vec2 // Puck position when it crossed the goal line
	Tick   uint64
}
