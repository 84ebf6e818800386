package audio

import (
	"github.com/gopxl/beep"

	"simon/internal/core"
)

// toneStreamer plays a pre-rendered cue once.
type toneStreamer struct {
	samples []float64
	pos     int
}

// Streamer returns a beep.Streamer that plays c once at rate.
func Streamer(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	return &toneStreamer{samples: Samples(c, int(rate), volume)}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.samples) {
			return i, true
		}
		v := s.samples[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }
