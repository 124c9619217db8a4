// Package rink describes the playable boundary: a rounded rectangle whose two
// short ends each have an open goal mouth centered vertically.
package rink

import (
	"math"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/vmath"
)

// Corner identifies one of the four rounded corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Bounds is the axis-aligned playable rectangle.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Rink is immutable once built; all methods are pure.
type Rink struct {
	bounds        Bounds
	cornerRadius  float64
	goalHalfWidth float64
	width         float64 // Viewport width, used for start positions and the center line
}

// New derives the rink from the viewport and line settings of cfg.
// The margin on every side is half the line width, and the top edge additionally
// leaves room for the score header.
func New(cfg config.Config) Rink {
	m := cfg.LineWidth / 2
	return Rink{
		bounds: Bounds{
			Left:   m,
			Right:  cfg.Width - m,
			Top:    m + cfg.HeaderHeight,
			Bottom: cfg.Height - m,
		},
		cornerRadius:  cfg.CornerRadius,
		goalHalfWidth: cfg.GoalWidth / 2,
		width:         cfg.Width,
	}
}

func (r Rink) Bounds() Bounds {
	return r.bounds
}

func (r Rink) CornerRadius() float64 {
	return r.cornerRadius
}

func (r Rink) GoalHalfWidth() float64 {
	return r.goalHalfWidth
}

// CenterX is the x of the center line.
func (r Rink) CenterX() float64 {
	return r.width / 2
}

// CenterY is the vertical center of the playable area; goal mouths are centered on it.
func (r Rink) CenterY() float64 {
	return r.bounds.Top + r.bounds.Height()/2
}

// Center returns the rink center point (face-off spot).
func (r Rink) Center() vmath.Vec2 {
	return vmath.V(r.CenterX(), r.CenterY())
}

// CornerCenters returns the centers of the four corner circles, indexed by Corner.
// Each circle has radius CornerRadius and touches the two walls of its corner.
func (r Rink) CornerCenters() [4]vmath.Vec2 {
	b := r.bounds
	R := r.cornerRadius
	return [4]vmath.Vec2{
		TopLeft:     vmath.V(b.Left+R, b.Top+R),
		TopRight:    vmath.V(b.Right-R, b.Top+R),
		BottomLeft:  vmath.V(b.Left+R, b.Bottom-R),
		BottomRight: vmath.V(b.Right-R, b.Bottom-R),
	}
}

// CornerAt reports which corner quadrant p lies in. A point is in a corner quadrant
// when it is strictly beyond the corner circle center on both axes; everything else
// belongs to the straight-wall region.
func (r Rink) CornerAt(p vmath.Vec2) (Corner, bool) {
	c := r.CornerCenters()
	left := p.X < c[TopLeft].X
	right := p.X > c[TopRight].X
	top := p.Y < c[TopLeft].Y
	bottom := p.Y > c[BottomLeft].Y

	switch {
	case left && top:
		return TopLeft, true
	case right && top:
		return TopRight, true
	case left && bottom:
		return BottomLeft, true
	case right && bottom:
		return BottomRight, true
	}
	return 0, false
}

// InGoalMouth reports whether y lies strictly within half a goal width of the
// vertical rink center.
func (r Rink) InGoalMouth(y float64) bool {
	return math.Abs(y-r.CenterY()) < r.goalHalfWidth
}

// GoalMouth returns the top and bottom y of the goal openings.
func (r Rink) GoalMouth() (top, bottom float64) {
	cy := r.CenterY()
	return cy - r.goalHalfWidth, cy + r.goalHalfWidth
}

// Contains reports whether a disc of the given radius at p lies fully inside the
// rounded boundary, ignoring the goal openings.
func (r Rink) Contains(p vmath.Vec2, radius float64) bool {
	if corner, ok := r.CornerAt(p); ok {
		return p.Dist(r.CornerCenters()[corner])+radius <= r.cornerRadius
	}
	b := r.bounds
	return p.X-radius >= b.Left && p.X+radius <= b.Right &&
		p.Y-radius >= b.Top && p.Y+radius <= b.Bottom
}

// StartPositions returns the face-off positions of player 1, player 2 and the puck:
// the players at 20% and 80% of the viewport width, the puck at the center,
// all on the vertical rink center.
func (r Rink) StartPositions() (player1, player2, puck vmath.Vec2) {
	cy := r.CenterY()
	return vmath.V(r.width*0.2, cy), vmath.V(r.width*0.8, cy), r.Center()
}
