package physics

import (
	"github.com/tomz197/airhockey/internal/rink"
	"github.com/tomz197/airhockey/internal/vmath"
)

// Contact describes what a body touched during ResolveWallCollision.
type Contact int

const (
	ContactNone Contact = iota
	ContactWall
	ContactCorner
	ContactGoalLeft  // Crossed the open left goal line (player 2 scores)
	ContactGoalRight // Crossed the open right goal line (player 1 scores)
)

func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactWall:
		return "wall"
	case ContactCorner:
		return "corner"
	case ContactGoalLeft:
		return "goal-left"
	case ContactGoalRight:
		return "goal-right"
	default:
		return "unknown"
	}
}

// IsGoal reports whether the contact is a goal crossing.
func (c Contact) IsGoal() bool {
	return c == ContactGoalLeft || c == ContactGoalRight
}

// ResolveWallCollision keeps b inside the rounded rink. The wall has infinite mass:
// an approaching velocity is reflected, then the body is pushed out along the
// contact normal by the full penetration.
//
// A body that can score and reaches the left or right wall inside the goal mouth
// is not bounced; the matching goal contact is returned and b is left as is.
func ResolveWallCollision(b *Body, r rink.Rink) Contact {
	normal, pen, contact := wallContact(b, r)
	if contact == ContactNone || contact.IsGoal() {
		return contact
	}

	velAlongNormal := b.Vel.Dot(normal)
	if velAlongNormal < 0 {
		j := -(1 + Restitution) * velAlongNormal
		b.Vel = b.Vel.Add(normal.Scale(j))
	}
	b.Pos = b.Pos.Add(normal.Scale(pen))

	return contact
}

// wallContact finds the inward contact normal and penetration depth for b.
// Corner quadrants and the straight-wall region are mutually exclusive.
func wallContact(b *Body, r rink.Rink) (normal vmath.Vec2, pen float64, contact Contact) {
	R := r.CornerRadius()

	if corner, ok := r.CornerAt(b.Pos); ok {
		center := r.CornerCenters()[corner]
		d := b.Pos.Sub(center)
		dist := d.Len()
		if dist > R-b.radius && dist > 0 {
			return d.Scale(-1 / dist), dist - (R - b.radius), ContactCorner
		}
		return vmath.Vec2{}, 0, ContactNone
	}

	bounds := r.Bounds()
	switch {
	case b.Pos.X-b.radius < bounds.Left:
		if b.CanScore() && r.InGoalMouth(b.Pos.Y) {
			return vmath.Vec2{}, 0, ContactGoalLeft
		}
		return vmath.V(1, 0), bounds.Left - (b.Pos.X - b.radius), ContactWall
	case b.Pos.X+b.radius > bounds.Right:
		if b.CanScore() && r.InGoalMouth(b.Pos.Y) {
			return vmath.Vec2{}, 0, ContactGoalRight
		}
		return vmath.V(-1, 0), (b.Pos.X + b.radius) - bounds.Right, ContactWall
	case b.Pos.Y-b.radius < bounds.Top:
		return vmath.V(0, 1), bounds.Top - (b.Pos.Y - b.radius), ContactWall
	case b.Pos.Y+b.radius > bounds.Bottom:
		return vmath.V(0, -1), (b.Pos.Y + b.radius) - bounds.Bottom, ContactWall
	}
	return vmath.Vec2{}, 0, ContactNone
}
