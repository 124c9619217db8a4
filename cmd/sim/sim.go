package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/airhockey/internal/bot"
	"github.com/tomz197/airhockey/internal/match"
	"github.com/tomz197/airhockey/internal/physics"
	"github.com/tomz197/airhockey/internal/vmath"
)

// serveSpeed is the puck speed of a face-off serve, in units per 1/60 s.
const serveSpeed = 4.0

// result is the outcome of a headless run.
type result struct {
	Final  match.State
	Goals  []match.Event
	Speed  []float64 // Puck speed after every tick
	Energy []float64 // Total kinetic energy after every tick
}

// simulate runs ticks fixed-length ticks with a bot on each side. The puck is
// served in a random direction at the start and after every goal.
func simulate(c *match.Controller, ticks int, dt time.Duration, rng *rand.Rand) result {
	p1 := bot.New(physics.Player1, c.Rink())
	p2 := bot.New(physics.Player2, c.Rink())

	s := c.NewState()
	serve(&s, rng)

	res := result{
		Speed:  make([]float64, 0, ticks),
		Energy: make([]float64, 0, ticks),
	}
	for _i := 0; _i < ticks; _i++ {
		var events []match.Event
		s, events = c.Tick(s, match.Inputs{Player1: p1.Intent(s), Player2: p2.Intent(s)}, dt)
		for _, ev := range events {
			if ev.Kind == match.EventGoal {
				res.Goals = append(res.Goals, ev)
				serve(&s, rng)
			}
		}
		res.Speed = append(res.Speed, s.Puck().Speed())
		res.Energy = append(res.Energy, physics.KineticEnergy(s.Bodies[:]...))
	}
	res.Final = s
	return res
}

// serve gives the puck at rest a push, avoiding angles that head straight up or down.
func serve(s *match.State, rng *rand.Rand) {
	angle := (rng.Float64() - 0.5) * math.Pi / 2 // Within 45 degrees of horizontal
	dir := vmath.V(math.Cos(angle), math.Sin(angle))
	if rng.Intn(2) == 0 {
		dir.X = -dir.X
	}
	s.Bodies[physics.Puck].Vel = dir.Scale(serveSpeed)
}
