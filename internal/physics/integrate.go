package physics

import "github.com/tomz197/airhockey/internal/vmath"

// Intent is the movement request for a controlled body over one tick.
// Axes are nominally in [-1, 1]; several devices may add onto the same axis.
type Intent struct {
	DX, DY float64
	Boost  bool
}

// Dir returns the intent direction, shortened to unit length when its magnitude
// exceeds 1. Smaller analog intents keep their magnitude.
func (in Intent) Dir() vmath.Vec2 {
	return vmath.V(in.DX, in.DY).ClampLen(1)
}

// IsZero reports whether the intent requests no movement.
func (in Intent) IsZero() bool {
	return in.DX == 0 && in.DY == 0
}

// SteerParams are the per-match constants used by Steer.
type SteerParams struct {
	Speed           float64 // Target speed at full intent, units per 1/60 s
	BoostMultiplier float64
	Lerp            float64 // Fraction of the velocity gap closed per tick
}

// Target returns the velocity the intent asks for.
func (p SteerParams) Target(in Intent) vmath.Vec2 {
	speed := p.Speed
	if in.Boost {
		speed *= p.BoostMultiplier
	}
	return in.Dir().Scale(speed)
}

// Steer moves the velocity of b part of the way toward the target velocity of in.
// Facing follows the intent direction and is kept when the intent is zero.
func (b *Body) Steer(in Intent, p SteerParams) {
	dir := in.Dir()
	if !dir.IsZero() {
		b.Facing = dir
	}
	b.Boosting = in.Boost

	target := p.Target(in)
	b.Vel = b.Vel.Add(target.Sub(b.Vel).Scale(p.Lerp))
}

// Damp multiplies the velocity by factor (friction, applied once per tick).
func (b *Body) Damp(factor float64) {
	b.Vel = b.Vel.Scale(factor)
}

// Advance moves b along its velocity. scale is the elapsed time expressed in
// 1/60 s frames.
func (b *Body) Advance(scale float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(scale))
}
