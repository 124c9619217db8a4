package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/airhockey/internal/vmath"
)

// Color is a pixel color. The zero value is an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorOrange
	ColorRed
	ColorBlue
	ColorYellow
	ColorGray
	numColors
)

// ansi256 maps each color to its 256-color palette index.
var ansi256 = [numColors]int{
	ColorNone:   0,
	ColorWhite:  15,
	ColorOrange: 208,
	ColorRed:    196,
	ColorBlue:   33,
	ColorYellow: 226,
	ColorGray:   244,
}

// noCell marks a cell whose on-screen content is unknown.
const noCell = 0xFFFF

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Objects draw in logical coordinates which are scaled to terminal pixels.
// Render only emits the cells that changed since the previous Render.
type Canvas struct {
	termWidth      int     // Actual terminal columns used by the canvas
	termHeight     int     // Actual terminal rows used by the canvas
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	prev           []uint16

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal (0-based).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the logical size.
// A size change forces a full redraw on the next Render.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.prev = make([]uint16, termHeight*termWidth)
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// Fit computes the largest canvas with the aspect ratio of the logical area that
// fits a terminal of cols x rows, and the offsets that center it.
// Half-block pixels are treated as square.
func Fit(cols, rows int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	scale := math.Min(float64(cols)/logicalWidth, float64(rows*2)/logicalHeight)
	width = max(int(logicalWidth*scale), 1)
	height = max(int(logicalHeight*scale/2), 1)
	return width, height, max((cols-width)/2, 0), max((rows-height)/2, 0)
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, e.g. after the screen was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = noCell
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the color at pixel coordinates, ColorNone outside the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return ColorNone
}

// toPixel returns the pixel covering a logical point.
func (c *Canvas) toPixel(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X * c.scaleX)), int(math.Floor(p.Y * c.scaleY))
}

// Set sets the pixel under a logical point.
func (c *Canvas) Set(p vmath.Vec2, col Color) {
	x, y := c.toPixel(p)
	c.setPixel(x, y, col)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 vmath.Vec2, col Color) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawArc draws the arc of a circle from angle from to angle to (radians,
// clockwise on screen since y grows downwards).
func (c *Canvas) DrawArc(center vmath.Vec2, radius, from, to float64, col Color) {
	// One sample per pixel of arc length, at least a few per arc.
	span := to - from
	n := max(int(math.Abs(span)*radius*math.Max(c.scaleX, c.scaleY)*2), 8)
	for i := 0; i <= n; i++ {
		a := from + span*float64(i)/float64(n)
		c.Set(center.Add(vmath.V(math.Cos(a), math.Sin(a)).Scale(radius)), col)
	}
}

// DrawCircle draws a circle outline.
func (c *Canvas) DrawCircle(center vmath.Vec2, radius float64, col Color) {
	c.DrawArc(center, radius, 0, 2*math.Pi, col)
}

// FillCircle fills every pixel whose center lies inside the circle. A circle
// smaller than a pixel still sets the pixel under its center.
func (c *Canvas) FillCircle(center vmath.Vec2, radius float64, col Color) {
	x0 := int(math.Floor((center.X - radius) * c.scaleX))
	x1 := int(math.Ceil((center.X + radius) * c.scaleX))
	y0 := int(math.Floor((center.Y - radius) * c.scaleY))
	y1 := int(math.Ceil((center.Y + radius) * c.scaleY))
	r2 := radius * radius

	for y := y0; y <= y1; y++ {
		ly := (float64(y)+0.5)/c.scaleY - center.Y
		for x := x0; x <= x1; x++ {
			lx := (float64(x)+0.5)/c.scaleX - center.X
			if lx*lx+ly*ly <= r2 {
				c.setPixel(x, y, col)
			}
		}
	}
	c.Set(center, col)
}

// FillRect fills the axis-aligned logical rectangle.
func (c *Canvas) FillRect(lo, hi vmath.Vec2, col Color) {
	x0, y0 := c.toPixel(lo)
	x1, y1 := c.toPixel(hi)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// Render writes the cells that changed since the last Render to w using
// half-block characters and 256-color escapes.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		cursorCol := -1 // Column the terminal cursor is at after the last write

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			cell := uint16(top)<<8 | uint16(bottom)

			idx := row*c.termWidth + col
			if c.prev[idx] == cell {
				continue
			}
			c.prev[idx] = cell

			if cursorCol != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			c.writeCell(top, bottom)
			cursorCol = col + 1
		}
	}

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString("\033[0m")
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) setColors(fg, bg Color) {
	c.renderBuf.WriteString("\033[0")
	if fg != ColorNone {
		c.renderBuf.WriteString(";38;5;")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(ansi256[fg]), 10))
	}
	if bg != ColorNone {
		c.renderBuf.WriteString(";48;5;")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(ansi256[bg]), 10))
	}
	c.renderBuf.WriteByte('m')
}

func (c *Canvas) writeCell(top, bottom Color) {
	switch {
	case top == ColorNone && bottom == ColorNone:
		c.setColors(ColorNone, ColorNone)
		c.renderBuf.WriteRune(BlockEmpty)
	case top == bottom:
		c.setColors(top, ColorNone)
		c.renderBuf.WriteRune(BlockFull)
	case bottom == ColorNone:
		c.setColors(top, ColorNone)
		c.renderBuf.WriteRune(BlockUpperHalf)
	case top == ColorNone:
		c.setColors(bottom, ColorNone)
		c.renderBuf.WriteRune(BlockLowerHalf)
	default:
		c.setColors(top, bottom)
		c.renderBuf.WriteRune(BlockUpperHalf)
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// has room for it on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + line)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row < c.offsetRow+c.termHeight+1; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count used by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count used by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position
// (col, row), including the centering offset. Useful for placing text overlays.
func (c *Canvas) LogicalToTerminal(p vmath.Vec2) (col, row int) {
	px, py := c.toPixel(p)
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
