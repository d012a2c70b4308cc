package kickoff

import "github.com/vovakirdan/space-kickoff/internal/core"

// Contact describes the geometric relation between the ball and the paddle line.
// It is computed without side effects so the debug overlay can show it.
type Contact struct {
	Projection core.Vec2 // Closest point on the paddle line to the ball centre
	CanCollide bool      // Projection lies on the segment, ends rounded by one radius
	Colliding  bool      // CanCollide and the centre is within one radius of the line
}

// Probe measures the ball against the paddle line regardless of paddle status.
// ok is false for a degenerate paddle.
func Probe(ball *Ball, paddle *Paddle) (c Contact, ok bool) {
	centre := ball.Centre()
	proj, ok := paddle.ProjectionOf(centre)
	if !ok {
		return Contact{}, false
	}

	r := ball.Radius()
	c.Projection = proj
	// |proj-start| + |proj-end| exceeds the length only when proj is past an end.
	c.CanCollide = proj.Distance(paddle.Start)+proj.Distance(paddle.End)-paddle.Length() <= r
	c.Colliding = c.CanCollide && proj.Distance(centre) <= r
	return c, true
}

// Resolve tests the ball against an active paddle and, on contact, pushes the ball
// out to sit tangent to the paddle line, mirrors its velocity about the line's normal
// and consumes the paddle. It reports whether a hit happened.
func Resolve(ball *Ball, paddle *Paddle) bool {
	if !paddle.Status.Collidable() {
		return false
	}

	contact, ok := Probe(ball, paddle)
	if !ok || !contact.Colliding {
		return false
	}

	ball.WasHit = true
	proj := contact.Projection
	r := ball.Radius()

	// Direction from the paddle line to the ball centre. When the centre lies on the
	// line there is no such direction; push the ball out along the paddle's upward normal.
	out := ball.Centre().Sub(proj).Normalize()
	if out.IsZero() {
		out = upwardNormal(paddle)
	}

	ball.SetCentre(proj.Add(out.Scale(r)))

	// Mirror velocity about the normal, then rescale by 2*bounce so that repeated
	// bounces keep the ball lively.
	velProj := ball.Velocity.ProjectOnto(out)
	ball.Velocity = ball.Velocity.Sub(velProj.Scale(2)).Scale(2 * ball.BounceModifier)

	paddle.Consume()
	return true
}

// upwardNormal returns the unit normal of the paddle that points up the screen
// (negative Y). For a vertical paddle it points left.
func upwardNormal(paddle *Paddle) core.Vec2 {
	n := paddle.End.Sub(paddle.Start).Perpendicular().Normalize()
	if n.Y > 0 || (n.Y == 0 && n.X > 0) {
		n = n.Scale(-1)
	}
	return n
}
