package rink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/vmath"
)

func defaultRink() Rink {
	return New(config.Default())
}

func TestBounds(t *testing.T) {
	r := defaultRink()
	want := Bounds{Left: 2, Right: 998, Top: 82, Bottom: 598}
	if diff := cmp.Diff(want, r.Bounds()); diff != "" {
		t.Fatalf("bounds mismatch (-want +got):\n%s", diff)
	}
	if r.CenterY() != 340 {
		t.Errorf("expected center y 340, got %f", r.CenterY())
	}
	if r.CenterX() != 500 {
		t.Errorf("expected center x 500, got %f", r.CenterX())
	}
}

func TestCornerCenters(t *testing.T) {
	r := defaultRink()
	want := [4]vmath.Vec2{
		TopLeft:     {X: 102, Y: 182},
		TopRight:    {X: 898, Y: 182},
		BottomLeft:  {X: 102, Y: 498},
		BottomRight: {X: 898, Y: 498},
	}
	if diff := cmp.Diff(want, r.CornerCenters(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("corner centers mismatch (-want +got):\n%s", diff)
	}
}

func TestCornerAt(t *testing.T) {
	r := defaultRink()
	tests := []struct {
		name   string
		p      vmath.Vec2
		want   Corner
		wantOK bool
	}{
		{"top-left quadrant", vmath.V(50, 120), TopLeft, true},
		{"top-right quadrant", vmath.V(950, 120), TopRight, true},
		{"bottom-left quadrant", vmath.V(50, 560), BottomLeft, true},
		{"bottom-right quadrant", vmath.V(950, 560), BottomRight, true},
		{"left straight wall", vmath.V(50, 340), 0, false},
		{"top straight wall", vmath.V(500, 100), 0, false},
		{"exactly on circle center x", vmath.V(102, 120), 0, false},
		{"center", r.Center(), 0, false},
	}

	for _, tt := range tests {
		got, ok := r.CornerAt(tt.p)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestInGoalMouth(t *testing.T) {
	r := defaultRink()
	tests := []struct {
		y    float64
		want bool
	}{
		{340, true},
		{340 + 74.9, true},
		{340 - 74.9, true},
		{340 + 75, false}, // boundary is exclusive
		{340 - 75, false},
		{100, false},
	}
	for _, tt := range tests {
		if got := r.InGoalMouth(tt.y); got != tt.want {
			t.Errorf("InGoalMouth(%f) = %v, want %v", tt.y, got, tt.want)
		}
	}

	top, bottom := r.GoalMouth()
	if top != 265 || bottom != 415 {
		t.Errorf("expected goal mouth 265..415, got %f..%f", top, bottom)
	}
}

func TestContains(t *testing.T) {
	r := defaultRink()
	if !r.Contains(r.Center(), 25) {
		t.Error("center should be inside")
	}
	if r.Contains(vmath.V(10, 340), 25) {
		t.Error("disc overlapping the left wall should not be inside")
	}
	// Inside the bounding box but outside the rounded corner.
	if r.Contains(vmath.V(20, 100), 15) {
		t.Error("disc in the cut-off corner should not be inside")
	}
	if !r.Contains(vmath.V(150, 200), 15) {
		t.Error("disc well inside the corner circle should be inside")
	}
}

func TestStartPositions(t *testing.T) {
	r := defaultRink()
	p1, p2, puck := r.StartPositions()
	want := []vmath.Vec2{{X: 200, Y: 340}, {X: 800, Y: 340}, {X: 500, Y: 340}}
	got := []vmath.Vec2{p1, p2, puck}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("start positions mismatch (-want +got):\n%s", diff)
	}
}

func TestCornerString(t *testing.T) {
	if TopRight.String() != "top-right" {
		t.Errorf("unexpected name %q", TopRight.String())
	}
	if Corner(9).String() != "unknown" {
		t.Errorf("unexpected name %q", Corner(9).String())
	}
}
