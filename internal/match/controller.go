// Package match runs the tick algorithm of a match: steering, puck friction,
// sub-stepped integration with collision resolution, the center-line constraint,
// goal detection and the face-off reset.
package match

import (
	"time"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/physics"
	"github.com/tomz197/airhockey/internal/rink"
	"github.com/tomz197/airhockey/internal/vmath"
)

// Controller owns the fixed parameters of a match. It holds no mutable state,
// so one Controller can drive any number of independent States.
type Controller struct {
	cfg   config.Config
	rink  rink.Rink
	steer physics.SteerParams
}

// New validates cfg and builds a controller for it.
func New(cfg config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:  cfg,
		rink: rink.New(cfg),
		steer: physics.SteerParams{
			Speed:           cfg.PlayerSpeed,
			BoostMultiplier: cfg.BoostMultiplier,
			Lerp:            cfg.PlayerLerp,
		},
	}, nil
}

func (c *Controller) Config() config.Config {
	return c.cfg
}

func (c *Controller) Rink() rink.Rink {
	return c.rink
}

// NewState returns the face-off state with both scores at zero.
func (c *Controller) NewState() State {
	p1, p2, puck := c.rink.StartPositions()
	return State{
		Bodies: [physics.NumKinds]physics.Body{
			physics.Player1: physics.NewBody(physics.Player1, p1, c.cfg.PlayerRadius, c.cfg.PlayerMass),
			physics.Player2: physics.NewBody(physics.Player2, p2, c.cfg.PlayerRadius, c.cfg.PlayerMass),
			physics.Puck:    physics.NewBody(physics.Puck, puck, c.cfg.PuckRadius, c.cfg.PuckMass),
		},
	}
}

// resetPositions puts every body back on its face-off spot at rest.
// Scores, facing and the tick counter are kept.
func (c *Controller) resetPositions(s *State) {
	p1, p2, puck := c.rink.StartPositions()
	for k, pos := range [physics.NumKinds]vmath.Vec2{p1, p2, puck} {
		b := &s.Bodies[k]
		b.Pos = pos
		b.Vel = vmath.Vec2{}
		b.Boosting = false
	}
}

// Tick advances s by elapsed wall-clock time. The input is sampled once for the
// whole tick. elapsed is clamped to the configured maximum delta.
func (c *Controller) Tick(s State, in Inputs, elapsed time.Duration) (State, []Event) {
	elapsed = min(max(elapsed, 0), c.cfg.MaxDelta())
	scale := elapsed.Seconds() * config.VelocityFrameRate
	subScale := scale / float64(c.cfg.Substeps)

	s.Tick++

	p1 := &s.Bodies[physics.Player1]
	p2 := &s.Bodies[physics.Player2]
	puck := &s.Bodies[physics.Puck]

	p1.Steer(in.Player1, c.steer)
	p2.Steer(in.Player2, c.steer)
	puck.Damp(c.cfg.PuckFriction)

	var events []Event
	for _i := 0; _i < c.cfg.Substeps; _i++ {
		for k := range s.Bodies {
			s.Bodies[k].Advance(subScale)
		}

		physics.ResolveBodyCollision(p1, p2)
		physics.ResolveBodyCollision(p1, puck)
		physics.ResolveBodyCollision(p2, puck)

		for k := range s.Bodies {
			contact := physics.ResolveWallCollision(&s.Bodies[k], c.rink)
			if !contact.IsGoal() {
				continue
			}
			ev := Event{
				Kind:   EventGoal,
				Scorer: scorerFor(contact),
				At:     s.Bodies[k].Pos,
				Tick:   s.Tick,
			}
			s.Scores.Add(ev.Scorer)
			events = append(events, ev)
			c.resetPositions(&s)
			break // The reset bodies are at rest on their spots
		}

		c.clampToHalf(p1)
		c.clampToHalf(p2)
	}

	return s, events
}

// scorerFor maps a goal contact to the player credited with it: a puck through
// the left mouth scores for player 2, through the right mouth for player 1.
func scorerFor(c physics.Contact) physics.Kind {
	if c == physics.ContactGoalLeft {
		return physics.Player2
	}
	return physics.Player1
}

// clampToHalf keeps a player on its own side of the center line. The line acts
// as an elastic wall: the position is clamped and an offending x velocity mirrored.
func (c *Controller) clampToHalf(b *physics.Body) {
	cx := c.rink.CenterX()
	r := b.Radius()

	switch b.Kind {
	case physics.Player1:
		if b.Pos.X+r > cx {
			b.Pos.X = cx - r
			if b.Vel.X > 0 {
				b.Vel.X = -b.Vel.X
			}
		}
	case physics.Player2:
		if b.Pos.X-r < cx {
			b.Pos.X = cx + r
			if b.Vel.X < 0 {
				b.Vel.X = -b.Vel.X
			}
		}
	}
}
