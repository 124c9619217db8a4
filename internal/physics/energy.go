package physics

import "github.com/tomz197/airhockey/internal/vmath"

// KineticEnergy returns the total kinetic energy of the bodies.
func KineticEnergy(bodies ...Body) float64 {
	var e float64
	for _, b := range bodies {
		e += 0.5 * b.mass * b.Vel.LenSq()
	}
	return e
}

// Momentum returns the total linear momentum of the bodies.
func Momentum(bodies ...Body) vmath.Vec2 {
	var p vmath.Vec2
	for _, b := range bodies {
		p = p.Add(b.Vel.Scale(b.mass))
	}
	return p
}
