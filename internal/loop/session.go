// Package loop drives a match session: it polls input, advances the match at the
// configured tick rate and redraws the terminal at the render rate.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/draw"
	"github.com/tomz197/airhockey/internal/input"
	"github.com/tomz197/airhockey/internal/match"
	"github.com/tomz197/airhockey/internal/object"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Renderer     *lipgloss.Renderer // Styles the text overlays; defaults to one for the output writer

	// IdleTimeout ends the session after this long without a key press.
	// A warning is shown for the last quarter. Zero disables it.
	IdleTimeout time.Duration
}

// Session runs one hot-seat match on one terminal. Only the goroutine calling
// Run touches the match state.
type Session struct {
	ctrl    *match.Controller
	match   match.State
	effects object.Effects
	styles  object.Styles

	state       GameState
	prevState   GameState
	inactive    bool
	wasInactive bool
	running     bool
	lastInput   time.Time
	shutdownAt  time.Time

	tick   *Driver
	render *Driver

	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	termCols     int
	termRows     int

	logger      *log.Logger
	idleTimeout time.Duration
}

// NewSession creates a session reading keys from r and drawing to w.
// It returns the config validation error if cfg is unusable.
func NewSession(r *bufio.Reader, w io.Writer, cfg config.Config, opts Options) (*Session, error) {
	ctrl, err := match.New(cfg)
	if err != nil {
		return nil, err
	}

	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
	}

	now := time.Now()
	s := &Session{
		ctrl:         ctrl,
		match:        ctrl.NewState(),
		styles:       object.NewStyles(renderer),
		state:        GameStateStart,
		prevState:    GameStateStart,
		running:      true,
		lastInput:    now,
		tick:         NewDriver(cfg.TickInterval(), now),
		render:       NewDriver(cfg.RenderInterval(), now),
		canvas:       draw.NewScaledCanvas(1, 1, cfg.Width, cfg.Height),
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		idleTimeout:  opts.IdleTimeout,
	}
	return s, nil
}

// Run starts the session loop. Blocks until the players quit, the input ends,
// the session idles out, or ctx is done (after a short shutdown notice).
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	s.logger.Info("session started")

	for s.running {
		now := time.Now()

		if ctx.Err() != nil && s.state != GameStateShutdown {
			s.beginShutdown(now)
		}

		if err := s.Step(input.ReadInput(s.inputStream), now); err != nil {
			return err
		}

		time.Sleep(s.idle(time.Now()))
	}

	scores := s.match.Scores
	s.logger.Info("session ended", "player1", scores.Player1, "player2", scores.Player2, "ticks", s.match.Tick)
	draw.ClearScreen(s.writer)
	return nil
}

// Step runs one loop iteration with input sampled at now: state handling,
// at most one match tick, and at most one frame.
func (s *Session) Step(in input.Input, now time.Time) error {
	s.trackActivity(in, now)
	if in.Quit {
		s.running = false
		return nil
	}

	switch s.state {
	case GameStateStart:
		if in.Start {
			s.startMatch(now)
		}
	case GameStatePlaying:
		s.updatePlaying(in, now)
	case GameStateShutdown:
		if !now.Before(s.shutdownAt) {
			s.running = false
			return nil
		}
	}

	if _, due := s.render.Poll(now); due {
		return s.drawFrame()
	}
	return nil
}

// idle returns how long the loop can sleep before something is due.
func (s *Session) idle(now time.Time) time.Duration {
	wait := s.render.Remaining(now)
	if s.state == GameStatePlaying {
		wait = min(wait, s.tick.Remaining(now))
	}
	return max(wait, minSleep)
}

// trackActivity handles the idle timeout.
func (s *Session) trackActivity(in input.Input, now time.Time) {
	if len(in.Pressed) > 0 {
		s.lastInput = now
		s.inactive = false
		return
	}
	if s.idleTimeout <= 0 {
		return
	}

	idle := now.Sub(s.lastInput)
	switch {
	case idle > s.idleTimeout:
		s.logger.Info("disconnecting idle session", "idle", idle.Round(time.Second))
		s.running = false
	case idle > s.idleTimeout*3/4:
		s.inactive = true
	}
}

// startMatch leaves the title screen. Scores start at zero.
func (s *Session) startMatch(now time.Time) {
	s.match = s.ctrl.NewState()
	s.effects.Reset()
	s.tick.Reset(now)
	s.state = GameStatePlaying
	s.logger.Info("match started")
}

// updatePlaying advances the match when a tick is due. Input is sampled once per tick.
func (s *Session) updatePlaying(in input.Input, now time.Time) {
	elapsed, due := s.tick.Poll(now)
	if !due {
		return
	}

	next, events := s.ctrl.Tick(s.match, match.Inputs{Player1: in.Player1, Player2: in.Player2}, elapsed)
	s.match = next

	for _, ev := range events {
		if ev.Kind != match.EventGoal {
			continue
		}
		s.logger.Debug("goal",
			"scorer", ev.Scorer,
			"player1", s.match.Scores.Player1,
			"player2", s.match.Scores.Player2,
			"tick", ev.Tick,
		)
		object.SpawnBurst(ev.At, goalParticles, goalParticleSpeed, goalParticleLifetime, nil, &s.effects)
	}

	if err := s.effects.Update(elapsed); err != nil {
		s.logger.Error("effects update failed", "err", err)
	}
}

func (s *Session) beginShutdown(now time.Time) {
	s.state = GameStateShutdown
	s.shutdownAt = now.Add(ShutdownDisplay)
	s.logger.Info("shutting down session")
}

// State returns the current game phase.
func (s *Session) State() GameState {
	return s.state
}

// Match returns the current match snapshot.
func (s *Session) Match() match.State {
	return s.match
}

// Running reports whether the loop should continue.
func (s *Session) Running() bool {
	return s.running
}

// Run creates a session and runs it until it ends.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, cfg config.Config, opts Options) error {
	s, err := NewSession(r, w, cfg, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
