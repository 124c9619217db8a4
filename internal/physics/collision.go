package physics

// Collision response constants.
const (
	Restitution       = 1.0  // Perfectly elastic, for both body pairs and walls
	CorrectionPercent = 0.8  // Share of the penetration removed per resolution
	CorrectionSlop    = 0.01 // Penetration tolerated before correcting
)

// ResolveBodyCollision resolves an overlap between two bodies with an elastic
// impulse along the center line followed by a soft positional correction.
// Returns true if the bodies were overlapping, approaching, and got resolved.
//
// Exactly coincident centers have no contact normal; the pair is left untouched.
func ResolveBodyCollision(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()

	if dist == 0 {
		return false
	}
	if dist >= a.radius+b.radius {
		return false
	}

	n := delta.Scale(1 / dist) // From a to b

	// Relative velocity along the normal; positive means already separating
	velAlongNormal := b.Vel.Sub(a.Vel).Dot(n)
	if velAlongNormal > 0 {
		return false
	}

	invMassSum := a.InvMass() + b.InvMass()

	// Impulse scalar, split between the bodies by inverse mass
	j := -(1 + Restitution) * velAlongNormal / invMassSum
	impulse := n.Scale(j)
	a.Vel = a.Vel.Sub(impulse.Scale(a.InvMass()))
	b.Vel = b.Vel.Add(impulse.Scale(b.InvMass()))

	// Push apart, the lighter body moving further
	penetration := a.radius + b.radius - dist
	correction := max(penetration-CorrectionSlop, 0) / invMassSum * CorrectionPercent
	push := n.Scale(correction)
	a.Pos = a.Pos.Sub(push.Scale(a.InvMass()))
	b.Pos = b.Pos.Add(push.Scale(b.InvMass()))

	return true
}
