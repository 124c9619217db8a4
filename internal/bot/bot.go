// Package bot produces scripted intents for a player, used by the headless simulator.
package bot

import (
	"math"

	"github.com/tomz197/airhockey/internal/match"
	"github.com/tomz197/airhockey/internal/physics"
	"github.com/tomz197/airhockey/internal/rink"
	"github.com/tomz197/airhockey/internal/vmath"
)

// Tuning
const (
	ArriveRadius   = 40.0  // Distance at which the bot starts easing off
	DeadZone       = 2.0   // Distance treated as "there"
	BoostDistance  = 250.0 // Minimum distance to the target before boosting
	BoostAlignment = 0.95  // Cosine between velocity and target direction needed to boost
	StrikeOffset   = 0.8   // Fraction of the combined radii the bot lines up behind the puck
)

// Bot chases the puck on its own half and lines up shots toward the opposing goal.
// When the puck is in the other half it falls back to a spot in front of its own goal.
type Bot struct {
	kind physics.Kind
	rink rink.Rink
}

// New creates a bot steering the given player.
func New(kind physics.Kind, r rink.Rink) Bot {
	return Bot{kind: kind, rink: r}
}

// Kind returns the player the bot steers.
func (b Bot) Kind() physics.Kind {
	return b.kind
}

// Intent returns the intent for the bot's player in state s.
func (b Bot) Intent(s match.State) physics.Intent {
	self := s.Body(b.kind)
	puck := s.Puck()

	target, attacking := b.target(self, puck)
	delta := target.Sub(self.Pos)
	dist := delta.Len()
	if dist < DeadZone {
		return physics.Intent{}
	}

	// Full intent far away, proportional inside the arrive radius.
	dir := delta.Scale(math.Min(1, dist/ArriveRadius) / dist)

	boost := false
	if attacking && dist > BoostDistance && self.Speed() > 0 {
		aligned := self.Vel.Scale(1 / self.Speed()).Dot(delta.Scale(1 / dist))
		boost = aligned > BoostAlignment
	}

	return physics.Intent{DX: dir.X, DY: dir.Y, Boost: boost}
}

// target picks where the bot wants to be and whether it is going for the puck.
func (b Bot) target(self, puck physics.Body) (vmath.Vec2, bool) {
	if !b.ownHalf(puck.Pos.X) {
		return b.home(puck.Pos), false
	}

	// Stand behind the puck on the line from the opposing goal through the puck.
	aim := puck.Pos.Sub(b.opposingGoal())
	n, ok := aim.Normalize()
	if !ok {
		return puck.Pos, true
	}
	behind := puck.Pos.Add(n.Scale((self.Radius() + puck.Radius()) * StrikeOffset))
	return behind, true
}

// home is a guarding spot at the start position, following the puck across the goal mouth.
func (b Bot) home(puck vmath.Vec2) vmath.Vec2 {
	p1, p2, _ := b.rink.StartPositions()
	start := p1
	if b.kind == physics.Player2 {
		start = p2
	}
	top, bottom := b.rink.GoalMouth()
	return vmath.V(start.X, math.Max(top, math.Min(bottom, puck.Y)))
}

func (b Bot) ownHalf(x float64) bool {
	if b.kind == physics.Player2 {
		return x >= b.rink.CenterX()
	}
	return x <= b.rink.CenterX()
}

// opposingGoal is the center of the goal line the bot shoots at.
func (b Bot) opposingGoal() vmath.Vec2 {
	bounds := b.rink.Bounds()
	if b.kind == physics.Player2 {
		return vmath.V(bounds.Left, b.rink.CenterY())
	}
	return vmath.V(bounds.Right, b.rink.CenterY())
}
