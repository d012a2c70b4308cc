package kickoff

import (
	"math"

	"github.com/vovakirdan/space-kickoff/internal/core"
)

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	State         PlayState
	ResumePending bool

	BallPosition core.Vec2
	BallCentre   core.Vec2
	BallDiameter float64
	Score        int
	Lives        int

	PaddleStatus PaddleStatus
	PaddleStart  core.Vec2
	PaddleEnd    core.Vec2

	Offset      core.Vec2
	Width       float64
	Height      float64
	RulerOffset float64

	Contact   Contact
	ContactOK bool
}

// Snapshot clamps the paddle, as every draw does, and copies the session state.
func (s *Session) Snapshot() Snapshot {
	s.paddle.Clamp()
	contact, ok := Probe(s.ball, s.paddle)
	return Snapshot{
		State:         s.state,
		ResumePending: s.resumePending,
		BallPosition:  s.ball.Position,
		BallCentre:    s.ball.Centre(),
		BallDiameter:  s.ball.Diameter,
		Score:         s.ball.Score,
		Lives:         s.ball.Lives,
		PaddleStatus:  s.paddle.Status,
		PaddleStart:   s.paddle.Start,
		PaddleEnd:     s.paddle.End,
		Offset:        s.view.Offset,
		Width:         s.view.Width,
		Height:        s.view.Height,
		RulerOffset:   s.view.RulerOffset,
		Contact:       contact,
		ContactOK:     ok,
	}
}

// WorldHeight converts a snapshot canvas Y to units climbed.
func (snap Snapshot) WorldHeight(y float64) float64 {
	return -(y - (snap.Height - snap.RulerOffset))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.State)
	h = h*31 + uint64(snap.PaddleStatus)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	for _, v := range []core.Vec2{snap.BallPosition, snap.PaddleStart, snap.PaddleEnd, snap.Offset} {
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
	}
	return h
}
