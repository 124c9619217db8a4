// Package physics integrates and collides the disc-shaped bodies of a match:
// impulse-based circle-circle resolution and reflection off the rounded rink wall.
package physics

import "github.com/tomz197/airhockey/internal/vmath"

// Kind tags a body with its role in the match.
type Kind int

const (
	Player1 Kind = iota
	Player2
	Puck
)

// NumKinds is the number of bodies in a match.
const NumKinds = 3

func (k Kind) String() string {
	switch k {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case Puck:
		return "puck"
	default:
		return "unknown"
	}
}

// Body is a moving disc. Position and velocity are mutated by the integrator and
// the collision resolver; radius and mass are fixed at construction.
type Body struct {
	Kind Kind
	Pos  vmath.Vec2
	Vel  vmath.Vec2

	// Facing is the last nonzero movement direction (players only, used for rendering).
	Facing   vmath.Vec2
	Boosting bool

	radius float64
	mass   float64
}

// NewBody creates a body at rest. radius and mass must be positive.
func NewBody(kind Kind, pos vmath.Vec2, radius, mass float64) Body {
	b := Body{
		Kind:   kind,
		Pos:    pos,
		radius: radius,
		mass:   mass,
	}
	switch kind {
	case Player1:
		b.Facing = vmath.V(1, 0)
	case Player2:
		b.Facing = vmath.V(-1, 0)
	}
	return b
}

func (b Body) Radius() float64 {
	return b.radius
}

func (b Body) Mass() float64 {
	return b.mass
}

// InvMass returns 1/mass.
func (b Body) InvMass() float64 {
	return 1 / b.mass
}

// CanScore reports whether crossing an open goal line with this body scores.
func (b Body) CanScore() bool {
	return b.Kind == Puck
}

// Speed returns the velocity magnitude.
func (b Body) Speed() float64 {
	return b.Vel.Len()
}

// Overlaps reports whether two bodies intersect (touching does not count).
func Overlaps(a, b *Body) bool {
	minDist := a.radius + b.radius
	return a.Pos.Sub(b.Pos).LenSq() < minDist*minDist
}
