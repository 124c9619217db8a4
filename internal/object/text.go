package object

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is a simple drawable text object.
// Coordinates are 1-based terminal positions; multi-line values are drawn
// one line below the other starting at X.
type Text struct {
	X     int
	Y     int
	Value string
}

// Draw writes the text at its position using ANSI cursor movement.
func (t Text) Draw(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	x := max(t.X, 1)
	y := max(t.Y, 1)
	for i, line := range strings.Split(t.Value, "\n") {
		if _, err := fmt.Fprintf(w, "\033[%d;%dH%s", y+i, x, line); err != nil {
			return err
		}
	}
	return nil
}

// Centered returns a Text whose block is centered on (centerX, centerY).
func Centered(centerX, centerY int, value string) Text {
	w, h := lipgloss.Size(value)
	return Text{X: centerX - w/2, Y: centerY - h/2, Value: value}
}

// Styles holds the lipgloss styles for the overlays. Build it from the renderer
// of the output it is drawn to so color support is detected per session.
type Styles struct {
	Score  lipgloss.Style
	Player [2]lipgloss.Style
	Title  lipgloss.Style
	Dim    lipgloss.Style
	Box    lipgloss.Style
}

// NewStyles creates the overlay styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	orange := lipgloss.Color("#ff8800")
	return Styles{
		Score: r.NewStyle().Foreground(orange).Bold(true),
		Player: [2]lipgloss.Style{
			r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			r.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		},
		Title: r.NewStyle().Foreground(orange).Bold(true),
		Dim:   r.NewStyle().Foreground(lipgloss.Color("244")),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(orange).
			Padding(1, 3),
	}
}

// ScoreLine renders "P1  3 - 1  P2" for the header band.
func (s Styles) ScoreLine(p1, p2 int) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.Player[0].Render("P1"),
		"  ",
		s.Score.Render(fmt.Sprintf("%d - %d", p1, p2)),
		"  ",
		s.Player[1].Render("P2"),
	)
}

var titleArt = []string{
	`    _   _       _  _         _             `,
	`   /_\ (_)_ _  | || |___  __| |_____ _  _  `,
	`  / _ \| | '_| | __ / _ \/ _| / / -_) || | `,
	` /_/ \_\_|_|   |_||_\___/\__|_\_\___|\_, | `,
	`                                     |__/  `,
}

// TitleScreen renders the start screen with the controls of both players.
func (s Styles) TitleScreen() string {
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Player[0].Render("Player 1")+"\n"+
			"W A S D   move\n"+
			"Shift     boost",
		"      ",
		s.Player[1].Render("Player 2")+"\n"+
			"O K L ;   move\n"+
			"arrows    move\n"+
			"Shift     boost",
	)

	return s.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(strings.Join(titleArt, "\n")),
		"",
		controls,
		"",
		s.Dim.Render("SPACE to start  -  Q to quit"),
	))
}
