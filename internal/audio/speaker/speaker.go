// Package speaker plays cues on the default output device through beep.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"simon/internal/audio"
	"simon/internal/core"
)

const sampleRate = beep.SampleRate(audio.SampleRate)

// Speaker mixes cues into the beep speaker.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
	log    zerolog.Logger
}

// Open initialises the output device and starts the mixer.
func Open(volume float64, log zerolog.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		open:   true,
		log:    log.With().Str("component", "speaker").Logger(),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// PlaySound mixes c into the output.
func (s *Speaker) PlaySound(c core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Add(audio.Streamer(c, sampleRate, s.volume))
	speaker.Unlock()
	s.log.Debug().Stringer("cue", c).Msg("play")
}

// Close silences the output.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	speaker.Clear()
	s.open = false
}
