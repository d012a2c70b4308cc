package kickoff

import (
	"math"

	"github.com/vovakirdan/space-kickoff/internal/config"
	"github.com/vovakirdan/space-kickoff/internal/core"
)

// Ball is the falling body. Position is the top-left corner of its bounding square.
type Ball struct {
	Position       core.Vec2
	Velocity       core.Vec2
	Diameter       float64
	Gravity        float64
	VelocityMax    core.Vec2
	BounceModifier float64

	Lives  int
	Score  int
	WasHit bool // Set by the first paddle contact; scoring starts from there

	// Spawn is the start position relative to the viewport's top-left corner.
	Spawn core.Vec2
}

// NewBall creates a ball at the spawn point of the given viewport:
// horizontally centred, two diameters below the top edge.
func NewBall(cfg config.KickoffConfig, view *Viewport) *Ball {
	d := cfg.Ball.Diameter
	b := &Ball{
		Diameter:       d,
		Gravity:        cfg.Ball.Gravity,
		VelocityMax:    core.V(cfg.Ball.VelocityMax.X, cfg.Ball.VelocityMax.Y),
		BounceModifier: cfg.Ball.BounceModifier,
		Lives:          cfg.Gameplay.Lives,
		Spawn:          core.V(view.Width/2-d/2, 2*d),
	}
	b.Respawn(view)
	return b
}

// Radius returns half the diameter.
func (b *Ball) Radius() float64 {
	return b.Diameter / 2
}

// Centre returns the centre of the ball.
func (b *Ball) Centre() core.Vec2 {
	return b.Position.Add(core.V(b.Radius(), b.Radius()))
}

// SetCentre moves the ball so that its centre is c.
func (b *Ball) SetCentre(c core.Vec2) {
	b.Position = c.Sub(core.V(b.Radius(), b.Radius()))
}

// Respawn places the ball at its spawn point within the current window and stops it.
func (b *Ball) Respawn(view *Viewport) {
	b.Position = view.ToWorld(b.Spawn)
	b.Velocity = core.Vec2{}
}

// IsOutOfBounds reports which window edges the ball has crossed. It does not mutate.
func (b *Ball) IsOutOfBounds(view *Viewport) OutOfBounds {
	return view.Bounds(b.Position, b.Diameter)
}

// UpdateResult tells the session what happened during Ball.Update.
type UpdateResult struct {
	LifeLost   bool // Ball fell below the window
	Exhausted  bool // That was the last life; the update stopped early
	WallBounce bool // Ball was pushed back from a side wall
	Scrolled   bool // Viewport moved up to follow the ball
}

// Update advances the ball by one tick.
// The order matters: velocity is clamped before the bounds test so the wall
// response always sees a legal speed.
func (b *Ball) Update(view *Viewport) UpdateResult {
	var res UpdateResult

	// gravity
	b.Velocity = b.Velocity.Add(core.V(0, b.Gravity))
	// terminal velocity
	b.Velocity = core.ClampVec(b.Velocity, b.VelocityMax)

	oob := b.IsOutOfBounds(view)
	if oob.Below {
		res.LifeLost = true
		b.Lives--
		if b.Lives <= 0 {
			res.Exhausted = true
			return res
		}
		b.Respawn(view)
	}

	// A respawned ball is already inside the window; the stale flags no longer apply.
	if oob.X() && !res.LifeLost {
		res.WallBounce = true
		if oob.Left {
			b.Position.X = view.Offset.X
		}
		if oob.Right {
			b.Position.X = view.Offset.X + view.Width - b.Diameter
		}
		b.Velocity = b.Velocity.Mul(core.V(-b.BounceModifier, 1))
	}

	b.Position = b.Position.Add(b.Velocity)

	if b.WasHit {
		b.Score = max(b.Score, int(math.Floor(view.WorldHeight(b.Position.Y))))
	}

	// Follow the ball upward only; the window never scrolls back down.
	if b.Position.Y < view.Top()-b.Diameter && b.Velocity.Y < 0 {
		view.SetTopLeft(view.Offset.X, b.Position.Y-b.Diameter)
		res.Scrolled = true
	}

	return res
}
