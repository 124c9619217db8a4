package physics

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomz197/airhockey/internal/vmath"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func disc(kind Kind, x, y, vx, vy, radius, mass float64) Body {
	b := NewBody(kind, vmath.V(x, y), radius, mass)
	b.Vel = vmath.V(vx, vy)
	return b
}

func TestHeadOnEqualMassSwapsVelocities(t *testing.T) {
	a := disc(Player1, 0, 0, 5, 0, 15, 1)
	b := disc(Player2, 29.9, 0, -5, 0, 15, 1)

	if !ResolveBodyCollision(&a, &b) {
		t.Fatal("expected overlapping approaching pair to resolve")
	}
	if diff := cmp.Diff(vmath.V(-5, 0), a.Vel, approx); diff != "" {
		t.Errorf("a velocity mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(vmath.V(5, 0), b.Vel, approx); diff != "" {
		t.Errorf("b velocity mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvedPairIsNotApproaching(t *testing.T) {
	tests := []struct {
		name string
		a, b Body
	}{
		{"player hits resting puck", disc(Player1, 100, 100, 6, 0, 25, 5), disc(Puck, 138, 104, 0, 0, 15, 1)},
		{"puck hits resting player", disc(Player1, 100, 100, 0, 0, 25, 5), disc(Puck, 130, 120, -9, -3, 15, 1)},
		{"glancing players", disc(Player1, 0, 0, 3, 2, 25, 5), disc(Player2, 40, 20, -4, 1, 25, 5)},
		{"deep overlap", disc(Player2, 0, 0, 1, 1, 25, 5), disc(Puck, 5, 5, -12, -12, 15, 1)},
	}

	for _, tt := range tests {
		a, b := tt.a, tt.b
		before := a.Pos.Dist(b.Pos)
		if !ResolveBodyCollision(&a, &b) {
			t.Errorf("%s: expected resolution", tt.name)
			continue
		}

		n, _ := tt.b.Pos.Sub(tt.a.Pos).Normalize()
		if rel := b.Vel.Sub(a.Vel).Dot(n); rel < -1e-9 {
			t.Errorf("%s: still approaching after resolution, relative normal velocity %f", tt.name, rel)
		}
		if after := a.Pos.Dist(b.Pos); after < before {
			t.Errorf("%s: correction moved bodies closer: %f -> %f", tt.name, before, after)
		}
	}
}

func TestElasticCollisionConservesEnergyAndMomentum(t *testing.T) {
	a := disc(Player1, 100, 100, 7, -2, 25, 5)
	b := disc(Puck, 135, 110, -3, 4, 15, 1)

	e0, p0 := KineticEnergy(a, b), Momentum(a, b)
	ResolveBodyCollision(&a, &b)
	e1, p1 := KineticEnergy(a, b), Momentum(a, b)

	if math.Abs(e1-e0) > 1e-9 {
		t.Errorf("kinetic energy changed: %f -> %f", e0, e1)
	}
	if diff := cmp.Diff(p0, p1, approx); diff != "" {
		t.Errorf("momentum changed (-before +after):\n%s", diff)
	}
}

func TestHeavierBodyChangesLess(t *testing.T) {
	player := disc(Player1, 0, 0, 4, 0, 25, 5)
	puck := disc(Puck, 39, 0, 0, 0, 15, 1)
	p0, k0 := player.Vel, puck.Vel

	ResolveBodyCollision(&player, &puck)

	dPlayer := player.Vel.Sub(p0).Len()
	dPuck := puck.Vel.Sub(k0).Len()
	if dPlayer >= dPuck {
		t.Errorf("expected player velocity change %f < puck change %f", dPlayer, dPuck)
	}
	if puck.Vel.X <= player.Vel.X {
		t.Errorf("puck should leave faster than the player: puck %f player %f", puck.Vel.X, player.Vel.X)
	}
}

func TestBodyCollisionNoOps(t *testing.T) {
	tests := []struct {
		name string
		a, b Body
	}{
		{"coincident centers", disc(Player1, 50, 50, 1, 0, 25, 5), disc(Puck, 50, 50, -1, 0, 15, 1)},
		{"exactly touching", disc(Player1, 0, 0, 5, 0, 15, 1), disc(Player2, 30, 0, -5, 0, 15, 1)},
		{"apart", disc(Player1, 0, 0, 5, 0, 25, 5), disc(Puck, 100, 0, 0, 0, 15, 1)},
		{"separating", disc(Player1, 0, 0, -2, 0, 25, 5), disc(Puck, 30, 0, 3, 0, 15, 1)},
	}

	for _, tt := range tests {
		a, b := tt.a, tt.b
		if ResolveBodyCollision(&a, &b) {
			t.Errorf("%s: expected no resolution", tt.name)
		}
		if diff := cmp.Diff([]Body{tt.a, tt.b}, []Body{a, b}, cmp.AllowUnexported(Body{})); diff != "" {
			t.Errorf("%s: bodies modified (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestSlopLeavesShallowOverlap(t *testing.T) {
	a := disc(Player1, 0, 0, 1, 0, 15, 1)
	b := disc(Player2, 29.995, 0, 0, 0, 15, 1)

	ResolveBodyCollision(&a, &b)

	if a.Pos.X != 0 || b.Pos.X != 29.995 {
		t.Errorf("penetration below slop should not move bodies, got a=%f b=%f", a.Pos.X, b.Pos.X)
	}
}

func TestOverlaps(t *testing.T) {
	a := disc(Player1, 0, 0, 0, 0, 25, 5)
	b := disc(Puck, 40, 0, 0, 0, 15, 1)
	if Overlaps(&a, &b) {
		t.Error("touching bodies should not overlap")
	}
	b.Pos.X = 39
	if !Overlaps(&a, &b) {
		t.Error("expected overlap")
	}
}
