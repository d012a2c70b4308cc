package kickoff

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-kickoff/internal/audio"
	"github.com/vovakirdan/space-kickoff/internal/config"
	"github.com/vovakirdan/space-kickoff/internal/core"
)

// PlayState is the session lifecycle. The ordering is meaningful: only states at or
// above Playing advance the simulation.
type PlayState int

const (
	NotStarted PlayState = iota
	GameOver
	Paused
	Playing
)

// String returns a human-readable name for the state.
func (s PlayState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case GameOver:
		return "game-over"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Advancing reports whether frames update the simulation.
func (s PlayState) Advancing() bool { return s >= Playing }

// FrameResult summarises one Frame call.
type FrameResult struct {
	Ran      bool // The simulation advanced
	Hit      bool // Ball bounced off the paddle
	LifeLost bool
	GameOver bool // This frame ended the game
}

// Session owns one ball, one paddle and the viewport, and sequences their updates.
// It is not safe for concurrent use: frames and gesture handlers must run on one
// goroutine, which is how the Bubble Tea loop drives it.
type Session struct {
	cfg    config.KickoffConfig
	view   *Viewport
	ball   *Ball
	paddle *Paddle
	state  PlayState

	resumePending bool // Restart or a lost life is waiting for the countdown
	inFrame       bool

	sound  audio.Player
	logger *log.Logger
}

// NewSession creates a session on a canvas of the given size. Nothing moves until
// Restart and Resume are called.
func NewSession(cfg config.KickoffConfig, width, height float64, sound audio.Player, logger *log.Logger) *Session {
	if sound == nil {
		sound = audio.Silent{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:    cfg,
		view:   NewViewport(width, height, cfg.Field.RulerOffset),
		sound:  sound,
		logger: logger,
		state:  NotStarted,
	}
	s.ball = NewBall(cfg, s.view)
	s.paddle = NewPaddle(cfg.Paddle.MinLength, cfg.Paddle.MaxLength)
	return s
}

// State returns the current play state.
func (s *Session) State() PlayState { return s.state }

// ResumePending reports whether the session waits for Resume after a restart or a lost life.
func (s *Session) ResumePending() bool { return s.resumePending }

// Viewport returns the session's viewport. Callers must treat it as read-only.
func (s *Session) Viewport() *Viewport { return s.view }

// Ball returns the current ball. It is replaced on Restart.
func (s *Session) Ball() *Ball { return s.ball }

// Paddle returns the current paddle. It is replaced on Restart.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Restart discards the ball and paddle, scrolls back to the origin and waits for Resume.
func (s *Session) Restart() {
	s.view.SetTopLeft(0, 0)
	s.ball = NewBall(s.cfg, s.view)
	s.paddle = NewPaddle(s.cfg.Paddle.MinLength, s.cfg.Paddle.MaxLength)
	s.state = Paused
	s.resumePending = true
	s.logger.Info("session restarted", "lives", s.ball.Lives)
}

// Pause stops frame updates. It is a no-op unless the session is playing.
func (s *Session) Pause() {
	if s.state != Playing {
		return
	}
	s.state = Paused
	s.logger.Debug("paused")
}

// Resume restarts frame updates from the current state.
// Only a paused session can resume; a finished or unstarted one needs Restart.
func (s *Session) Resume() {
	if s.state != Paused {
		return
	}
	s.state = Playing
	s.resumePending = false
	s.sound.Play(audio.CueStart)
	s.sound.Play(audio.CueCrowd)
	s.logger.Debug("resumed", "score", s.ball.Score, "lives", s.ball.Lives)
}

// Resize changes the canvas size in place.
func (s *Session) Resize(width, height float64) {
	s.view.Resize(width, height)
	s.ball.Spawn = core.V(width/2-s.ball.Diameter/2, 2*s.ball.Diameter)
}

// Frame advances the simulation by one tick: physics, loop transitions, then
// collision. Calls made while the session is not playing, or from inside a frame,
// do nothing.
func (s *Session) Frame() FrameResult {
	var res FrameResult
	if !s.state.Advancing() || s.inFrame {
		return res
	}
	s.inFrame = true
	defer func() { s.inFrame = false }()
	res.Ran = true

	// One clamp per frame; collision and rendering both use this geometry.
	s.paddle.Clamp()

	upd := s.ball.Update(s.view)
	if upd.LifeLost {
		res.LifeLost = true
		s.Pause()
		if upd.Exhausted {
			s.endGame()
			res.GameOver = true
			return res
		}
		s.resumePending = true
		s.logger.Info("life lost", "lives", s.ball.Lives, "score", s.ball.Score)
	}
	if upd.WallBounce {
		s.sound.Play(audio.CueBounce)
	}

	if s.state == Playing && Resolve(s.ball, s.paddle) {
		res.Hit = true
		s.sound.Play(audio.CueBounce)
		s.logger.Debug("paddle hit", "velocity", s.ball.Velocity)
	}
	return res
}

func (s *Session) endGame() {
	s.state = GameOver
	s.resumePending = false
	s.sound.Stop(audio.CueCrowd)
	s.sound.Play(audio.CueGameOver)
	s.logger.Info("game over", "score", s.ball.Score)
}

// gestureAllowed reports whether the paddle accepts input in the current state.
func (s *Session) gestureAllowed() bool {
	return s.state == Playing || s.state == Paused
}

// GestureStart begins a new paddle at p (absolute canvas coordinates).
func (s *Session) GestureStart(p core.Vec2) {
	if !s.gestureAllowed() {
		return
	}
	s.paddle.Begin(p)
}

// GestureMove drags the paddle's free end to p.
func (s *Session) GestureMove(p core.Vec2) {
	if !s.gestureAllowed() {
		return
	}
	s.paddle.Extend(p)
}

// GestureEnd releases the pointer, activating or discarding the paddle.
func (s *Session) GestureEnd() PaddleStatus {
	if !s.gestureAllowed() {
		return s.paddle.Status
	}
	return s.paddle.Finish()
}
