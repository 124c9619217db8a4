package object

import (
	"math"

	"github.com/tomz197/airhockey/internal/draw"
	"github.com/tomz197/airhockey/internal/rink"
	"github.com/tomz197/airhockey/internal/vmath"
)

// CenterCircleRadius is the radius of the face-off circle marking.
const CenterCircleRadius = 75.0

// goalDepth is how far the shaded goal boxes reach into the rink.
const goalDepth = 50.0

// Rink draws the static markings: the rounded boundary, center line, face-off
// circle and the shaded goal boxes.
type Rink struct {
	Geometry rink.Rink
}

func (r Rink) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	g := r.Geometry
	b := g.Bounds()
	R := g.CornerRadius()
	cc := g.CornerCenters()

	// Goal boxes first so the lines stay on top.
	top, bottom := g.GoalMouth()
	c.FillRect(vmath.V(b.Left, top), vmath.V(b.Left+goalDepth, bottom), draw.ColorGray)
	c.FillRect(vmath.V(b.Right-goalDepth, top), vmath.V(b.Right, bottom), draw.ColorGray)

	// Straight walls between the corner arcs.
	c.DrawLine(vmath.V(b.Left+R, b.Top), vmath.V(b.Right-R, b.Top), draw.ColorOrange)
	c.DrawLine(vmath.V(b.Left+R, b.Bottom), vmath.V(b.Right-R, b.Bottom), draw.ColorOrange)
	c.DrawLine(vmath.V(b.Left, b.Top+R), vmath.V(b.Left, b.Bottom-R), draw.ColorOrange)
	c.DrawLine(vmath.V(b.Right, b.Top+R), vmath.V(b.Right, b.Bottom-R), draw.ColorOrange)

	c.DrawArc(cc[rink.TopLeft], R, math.Pi, 1.5*math.Pi, draw.ColorOrange)
	c.DrawArc(cc[rink.TopRight], R, 1.5*math.Pi, 2*math.Pi, draw.ColorOrange)
	c.DrawArc(cc[rink.BottomRight], R, 0, 0.5*math.Pi, draw.ColorOrange)
	c.DrawArc(cc[rink.BottomLeft], R, 0.5*math.Pi, math.Pi, draw.ColorOrange)

	c.DrawLine(vmath.V(g.CenterX(), b.Top), vmath.V(g.CenterX(), b.Bottom), draw.ColorOrange)
	c.DrawCircle(g.Center(), CenterCircleRadius, draw.ColorOrange)

	return nil
}
