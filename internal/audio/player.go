// Package audio plays short synthesized sound cues.
// Playback is fire-and-forget: Play never blocks the caller on audio output.
package audio

// Cue names a sound event emitted by the game.
type Cue string

const (
	CueBounce   Cue = "bounce"   // Ball hit a wall or the paddle
	CueStart    Cue = "start"    // Simulation resumed after the countdown
	CueGameOver Cue = "gameover" // Last life lost
	CueCrowd    Cue = "crowd"    // Stadium murmur, loops until stopped
)

// Loops reports whether the cue repeats until stopped. A looping cue plays at most
// once at a time.
func (c Cue) Loops() bool {
	return c == CueCrowd
}

// Player receives cues. Implementations must return immediately.
type Player interface {
	Play(cue Cue)
	// Stop ends a looping cue. Other cues run to completion and ignore Stop.
	Stop(cue Cue)
}

// Silent discards every cue. Used when audio is disabled or the device is unavailable.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Stop does nothing.
func (Silent) Stop(Cue) {}

// Recorder keeps cues in order. Useful for tests and the debug overlay.
type Recorder struct {
	Cues    []Cue
	Stopped []Cue
}

// Play appends the cue.
func (r *Recorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Stop appends the cue to Stopped.
func (r *Recorder) Stop(c Cue) {
	r.Stopped = append(r.Stopped, c)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}
