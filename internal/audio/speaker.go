package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-kickoff/internal/config"
)

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	loops  map[Cue]*beep.Ctrl // Running looping cues
	closed bool
	logger *log.Logger
}

// NewSpeaker initializes the audio device.
func NewSpeaker(cfg config.AudioConfig, logger *log.Logger) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}

	s := &Speaker{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play schedules a cue on the mixer and returns immediately.
// A looping cue that is already running is left alone.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, running := s.loops[c]; running {
		return
	}
	st := synthesize(c, s.rate, s.volume)
	if st == nil {
		s.logger.Debug("unknown audio cue", "cue", c)
		return
	}

	if c.Loops() {
		ctrl := &beep.Ctrl{Streamer: st}
		if s.loops == nil {
			s.loops = make(map[Cue]*beep.Ctrl)
		}
		s.loops[c] = ctrl
		st = ctrl
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Stop ends a running looping cue. The mixer drops it on its next pass.
func (s *Speaker) Stop(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl, ok := s.loops[c]
	if !ok {
		return
	}
	delete(s.loops, c)

	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.loops = nil

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Open returns a Player for the configuration and a function releasing it.
// Audio is optional: a disabled config or a missing device yields Silent.
func Open(cfg config.AudioConfig, logger *log.Logger) (Player, func()) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		return Silent{}, func() {}
	}

	s, err := NewSpeaker(cfg, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return Silent{}, func() {}
	}
	return s, s.Close
}
