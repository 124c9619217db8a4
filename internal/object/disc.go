package object

import (
	"github.com/tomz197/airhockey/internal/draw"
	"github.com/tomz197/airhockey/internal/physics"
)

// Disc draws a body: players as filled discs with a notch showing their facing,
// the puck as a white disc.
type Disc struct {
	Body physics.Body
}

// DiscColor returns the fill color of a body kind.
func DiscColor(k physics.Kind) draw.Color {
	switch k {
	case physics.Player1:
		return draw.ColorRed
	case physics.Player2:
		return draw.ColorBlue
	default:
		return draw.ColorWhite
	}
}

func (d Disc) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	b := d.Body

	c.FillCircle(b.Pos, b.Radius(), DiscColor(b.Kind))
	if b.Kind == physics.Puck {
		return nil
	}

	rim := draw.ColorWhite
	if b.Boosting {
		rim = draw.ColorYellow
	}
	c.DrawCircle(b.Pos, b.Radius(), rim)
	c.DrawLine(b.Pos, b.Pos.Add(b.Facing.Scale(b.Radius())), rim)
	return nil
}
