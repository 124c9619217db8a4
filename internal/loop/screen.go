package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/airhockey/internal/draw"
	"github.com/tomz197/airhockey/internal/object"
	"github.com/tomz197/airhockey/internal/vmath"
)

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	s.termCols, s.termRows = termWidth, termHeight
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, s.canvas.LogicalWidth(), s.canvas.LogicalHeight())

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.chunkWriter)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
}

// fitTermSize clamps the terminal to the max render resolution, fits the rink's
// aspect ratio inside it and computes the offset that centers the result.
func fitTermSize(termWidth, termHeight int, logicalWidth, logicalHeight float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	cols := min(termWidth, MaxTermWidth)
	rows := min(termHeight, MaxTermHeight)
	renderWidth, renderHeight, offsetCol, offsetRow = draw.Fit(cols, rows, logicalWidth, logicalHeight)
	offsetCol += (termWidth - cols) / 2
	offsetRow += (termHeight - rows) / 2
	return renderWidth, renderHeight, offsetCol, offsetRow
}

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	s.updateScreen()

	// On game state or inactivity transitions, do a full terminal clear
	// so overlay text from the previous screen does not linger.
	stateChanged := s.state != s.prevState
	inactiveChanged := s.inactive != s.wasInactive
	if stateChanged || inactiveChanged {
		draw.ClearScreen(s.chunkWriter)
		s.canvas.ForceRedraw()
		s.prevState = s.state
		s.wasInactive = s.inactive
	}

	s.canvas.Clear()
	ctx := object.DrawContext{Canvas: s.canvas, Writer: s.chunkWriter}

	if err := (object.Rink{Geometry: s.ctrl.Rink()}).Draw(ctx); err != nil {
		return err
	}
	if s.state != GameStateStart {
		for _, b := range s.match.Bodies {
			if err := (object.Disc{Body: b}).Draw(ctx); err != nil {
				return err
			}
		}
		if err := s.effects.Draw(ctx); err != nil {
			return err
		}
	}

	if err := s.canvas.Render(s.chunkWriter); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(s.chunkWriter); err != nil {
		return err
	}

	// UI overlay goes after the canvas so it's on top.
	if err := s.drawUI(time.Now()); err != nil {
		return err
	}

	return s.chunkWriter.Flush()
}

// drawUI draws the text overlays for the current state.
func (s *Session) drawUI(now time.Time) error {
	cfg := s.ctrl.Config()
	scoreCol, scoreRow := s.canvas.LogicalToTerminal(vmath.V(s.ctrl.Rink().CenterX(), cfg.HeaderHeight/2))
	score := object.Centered(scoreCol, scoreRow, s.styles.ScoreLine(s.match.Scores.Player1, s.match.Scores.Player2))
	if err := score.Draw(s.chunkWriter); err != nil {
		return err
	}

	centerCol, centerRow := s.screenCenter()
	switch {
	case s.state == GameStateShutdown:
		left := max(s.shutdownAt.Sub(now).Round(time.Second), 0)
		msg := s.styles.Box.Render(s.styles.Title.Render("Server shutting down") + "\n\n" +
			s.styles.Dim.Render(fmt.Sprintf("Closing in %s", left)))
		return object.Centered(centerCol, centerRow, msg).Draw(s.chunkWriter)
	case s.inactive:
		left := max(s.idleTimeout-now.Sub(s.lastInput), 0).Round(time.Second)
		msg := s.styles.Box.Render(s.styles.Title.Render("Still there?") + "\n\n" +
			s.styles.Dim.Render(fmt.Sprintf("Disconnecting in %s. Press any key.", left)))
		return object.Centered(centerCol, centerRow, msg).Draw(s.chunkWriter)
	case s.state == GameStateStart:
		return object.Centered(centerCol, centerRow, s.styles.TitleScreen()).Draw(s.chunkWriter)
	}
	return nil
}

// screenCenter returns the 1-based terminal cell at the middle of the screen.
func (s *Session) screenCenter() (col, row int) {
	return s.termCols/2 + 1, s.termRows/2 + 1
}
