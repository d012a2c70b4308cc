package kickoff

import "github.com/vovakirdan/space-kickoff/internal/core"

// PaddleStatus is the paddle's lifecycle stage. The ordering is meaningful.
type PaddleStatus int

const (
	NoPaddle PaddleStatus = iota // Nothing drawn
	Drawing                      // Pointer is down, segment follows it
	Inactive                     // Drawn, already consumed by a hit
	Active                       // Drawn and waiting for the ball
)

// String returns a human-readable name for the status.
func (s PaddleStatus) String() string {
	switch s {
	case NoPaddle:
		return "none"
	case Drawing:
		return "drawing"
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Drawable reports whether the paddle should be rendered.
func (s PaddleStatus) Drawable() bool { return s >= Drawing }

// Collidable reports whether the ball can hit the paddle.
func (s PaddleStatus) Collidable() bool { return s == Active }

// Paddle is the player-drawn line segment.
type Paddle struct {
	Status    PaddleStatus
	Start     core.Vec2
	End       core.Vec2
	MinLength float64
	MaxLength float64
}

// NewPaddle creates an empty paddle.
func NewPaddle(minLength, maxLength float64) *Paddle {
	return &Paddle{MinLength: minLength, MaxLength: maxLength}
}

// Length returns the distance from Start to End.
func (p *Paddle) Length() float64 {
	return p.Start.Distance(p.End)
}

// Begin starts a new segment at point, discarding any previous one.
func (p *Paddle) Begin(point core.Vec2) {
	p.Status = Drawing
	p.Start = point
	p.End = point
}

// Extend moves the free end while drawing. Ignored in any other state.
func (p *Paddle) Extend(point core.Vec2) {
	if p.Status != Drawing {
		return
	}
	p.End = point
}

// Finish ends the gesture. Segments no longer than MinLength are discarded.
func (p *Paddle) Finish() PaddleStatus {
	if p.Status != Drawing {
		return p.Status
	}
	if p.Length() <= p.MinLength {
		p.Start = core.Vec2{}
		p.End = core.Vec2{}
		p.Status = NoPaddle
		return p.Status
	}
	p.Status = Active
	return p.Status
}

// Consume marks an active paddle as used.
func (p *Paddle) Consume() {
	if p.Status == Active {
		p.Status = Inactive
	}
}

// Clamp shortens the paddle to MaxLength by pulling Start toward End.
// End never moves, and clamping a clamped paddle changes nothing.
func (p *Paddle) Clamp() {
	length := p.Length()
	if length <= p.MaxLength {
		return
	}
	// translate to origin, scale, translate back
	tStart := p.Start.Sub(p.End).Scale(p.MaxLength / length)
	p.Start = tStart.Add(p.End)
}

// ProjectionOf returns the closest point to v on the infinite line through the
// paddle's endpoints. ok is false when the endpoints coincide and no line exists.
func (p *Paddle) ProjectionOf(v core.Vec2) (proj core.Vec2, ok bool) {
	axis := p.End.Sub(p.Start)
	if axis.IsZero() {
		return core.Vec2{}, false
	}
	return v.Sub(p.Start).ProjectOnto(axis).Add(p.Start), true
}

// Segment returns a copy of the endpoints.
func (p *Paddle) Segment() (start, end core.Vec2) {
	return p.Start, p.End
}
