package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator creates a wave of the given frequency and length.
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay shapes a stream with a linear attack and an exponential tail.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	attack   int
	speed    float64 // e-folds per second
	position int
}

func newDecay(s beep.Streamer, attack time.Duration, speed float64, rate beep.SampleRate) *decay {
	return &decay{streamer: s, rate: rate, attack: rate.N(attack), speed: speed}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.speed * float64(d.position) / float64(d.rate))
		if d.position < d.attack && d.attack > 0 {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; 0 silences it.
// math.Log2(0) is -Inf, so zero volume is handled with Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// bounceSound is a dull kick: a low thump under a short burst of noise.
func bounceSound(rate beep.SampleRate) beep.Streamer {
	thump := newDecay(newOscillator(140, 120*time.Millisecond, WaveSine, rate), 2*time.Millisecond, 30, rate)
	slap := newDecay(newOscillator(0, 40*time.Millisecond, WaveNoise, rate), time.Millisecond, 80, rate)
	return beep.Mix(newVolume(thump, 0.8), newVolume(slap, 0.3))
}

// whistle is a referee-style trill: a square carrier warbled by a second tone.
func whistle(rate beep.SampleRate, d time.Duration) beep.Streamer {
	carrier := newVolume(newOscillator(2300, d, WaveSine, rate), 0.5)
	trill := newVolume(newOscillator(2450, d, WaveSquare, rate), 0.08)
	return newDecay(beep.Mix(carrier, trill), 10*time.Millisecond, 1.5, rate)
}

// startSound is two short whistle blasts.
func startSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		whistle(rate, 150*time.Millisecond),
		beep.Silence(rate.N(90*time.Millisecond)),
		whistle(rate, 300*time.Millisecond),
	)
}

// gameOverSound is the full-time whistle: two short blasts and a long one.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	gap := rate.N(120 * time.Millisecond)
	return beep.Seq(
		whistle(rate, 180*time.Millisecond),
		beep.Silence(gap),
		whistle(rate, 180*time.Millisecond),
		beep.Silence(gap),
		whistle(rate, 700*time.Millisecond),
	)
}

// lowpass is a one-pole filter; alpha near 0 keeps only the rumble.
type lowpass struct {
	streamer beep.Streamer
	alpha    float64
	last     [2]float64
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			l.last[ch] += l.alpha * (samples[i][ch] - l.last[ch])
			samples[i][ch] = l.last[ch]
		}
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// crowdSound is two seconds of filtered noise over a faint low hum.
func crowdSound(rate beep.SampleRate) beep.Streamer {
	murmur := &lowpass{streamer: newOscillator(0, 2*time.Second, WaveNoise, rate), alpha: 0.05}
	hum := newOscillator(95, 2*time.Second, WaveSine, rate)
	return beep.Mix(newVolume(murmur, 0.6), newVolume(hum, 0.03))
}

// crowdLoop repeats crowdSound until the caller drops it.
func crowdLoop(rate beep.SampleRate) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return crowdSound(rate)
	})
}

// synthesize builds a fresh streamer for a cue, or nil for unknown cues.
// Looping cues never drain.
func synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueBounce:
		s = bounceSound(rate)
	case CueStart:
		s = startSound(rate)
	case CueGameOver:
		s = gameOverSound(rate)
	case CueCrowd:
		s = crowdLoop(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
