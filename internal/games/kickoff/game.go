// Package kickoff implements Space Kickoff: keep a falling ball in the air by drawing
// paddles under it, and climb as high as possible before running out of lives.
//
// Session holds the simulation. Game adapts it to the platform: it converts pointer
// cells to canvas units, runs the resume countdown and draws the scene.
package kickoff

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-kickoff/internal/audio"
	"github.com/vovakirdan/space-kickoff/internal/config"
	"github.com/vovakirdan/space-kickoff/internal/core"
)

// Game implements the platform game contract on top of a Session.
type Game struct {
	cfg     config.KickoffConfig
	runtime core.RuntimeConfig
	session *Session
	sound   audio.Player
	logger  *log.Logger

	countdown  int  // Ticks left before Resume; 0 when idle
	userPaused bool // Paused from the keyboard; no countdown until unpaused
	debug      bool
	starSeed   uint32
}

// New creates a game. Reset must be called before the first Step.
func New(cfg config.KickoffConfig, sound audio.Player, logger *log.Logger) *Game {
	return &Game{
		cfg:    cfg,
		sound:  sound,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kickoff"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Kickoff"
}

// SetDebug turns the collision overlay on or off.
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Reset creates a fresh session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	w, h := g.canvasSize()
	g.session = NewSession(g.cfg, w, h, g.sound, g.logger)
	g.countdown = 0
	g.userPaused = false
	g.starSeed = uint32(runtime.Seed) ^ uint32(runtime.Seed>>32)
}

// Resize adapts the canvas to a new terminal size without losing progress.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	w, h := g.canvasSize()
	g.session.Resize(w, h)
}

func (g *Game) canvasSize() (float64, float64) {
	return float64(g.runtime.ScreenW) * g.cfg.Field.CellWidth,
		float64(g.runtime.ScreenH) * g.cfg.Field.CellHeight
}

// Step applies the frame's input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	switch g.session.State() {
	case NotStarted:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.restart()
		}
	case GameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
	default:
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
		case in.Has(core.ActionPause):
			g.togglePause()
		}
	}

	for _, gs := range in.Gestures {
		g.applyGesture(gs)
	}

	// Restart and lost lives leave the session paused; start the countdown for them.
	if g.session.State() == Paused && !g.userPaused && g.countdown == 0 {
		g.startCountdown()
	}
	if g.countdown > 0 {
		g.countdown--
		if g.countdown == 0 {
			g.session.Resume()
		}
	}

	g.session.Frame()
	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	g.userPaused = false
	g.countdown = 0
	g.session.Restart()
}

func (g *Game) togglePause() {
	switch {
	case g.session.State() == Playing:
		g.session.Pause()
		g.userPaused = true
	case g.userPaused:
		g.userPaused = false
	default:
		// Pausing during the countdown cancels it.
		g.userPaused = true
		g.countdown = 0
	}
}

func (g *Game) startCountdown() {
	g.countdown = g.cfg.Gameplay.CountdownSeconds * g.runtime.TickRate
	if g.countdown == 0 {
		g.session.Resume()
	}
}

// CountdownSeconds returns the number shown on screen, or 0 when not counting down.
func (g *Game) CountdownSeconds() int {
	if g.countdown <= 0 {
		return 0
	}
	return int(math.Ceil(float64(g.countdown) / float64(g.runtime.TickRate)))
}

// applyGesture converts a pointer event to canvas coordinates and forwards it.
// Points outside the screen are dropped; a release is always delivered so that a
// drag leaving the window still finishes.
func (g *Game) applyGesture(gs core.Gesture) {
	if gs.Phase == core.GestureEnd {
		g.session.GestureEnd()
		return
	}

	p, ok := g.cellToCanvas(gs.X, gs.Y)
	if !ok {
		return
	}
	switch gs.Phase {
	case core.GestureStart:
		g.session.GestureStart(p)
	case core.GestureMove:
		g.session.GestureMove(p)
	}
}

// cellToCanvas returns the absolute canvas point at the centre of a screen cell.
func (g *Game) cellToCanvas(x, y int) (core.Vec2, bool) {
	if x < 0 || y < 0 || x >= g.runtime.ScreenW || y >= g.runtime.ScreenH {
		return core.Vec2{}, false
	}
	local := core.V(
		(float64(x)+0.5)*g.cfg.Field.CellWidth,
		(float64(y)+0.5)*g.cfg.Field.CellHeight,
	)
	p := g.session.Viewport().ToWorld(local)
	if !p.IsFinite() {
		return core.Vec2{}, false
	}
	return p, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Ball().Score,
		Lives:    g.session.Ball().Lives,
		GameOver: st == GameOver,
		Paused:   !st.Advancing(),
	}
}
