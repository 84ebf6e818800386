//go:build ebiten

package audio

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"simon/internal/core"
)

// Speaker plays cues through an ebiten audio context. Each cue is rendered
// once and its player rewound on replay.
type Speaker struct {
	ctx     *ebaudio.Context
	volume  float64
	players [core.CueCount]*ebaudio.Player
	log     zerolog.Logger
}

// NewSpeaker opens the process-wide ebiten audio context. It must be called
// at most once.
func NewSpeaker(volume float64, log zerolog.Logger) *Speaker {
	return &Speaker{
		ctx:    ebaudio.NewContext(SampleRate),
		volume: clamp01(volume),
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// PlaySound starts c from the beginning.
func (s *Speaker) PlaySound(c core.Cue) {
	if int(c) >= core.CueCount {
		return
	}
	p := s.players[c]
	if p == nil {
		p = s.ctx.NewPlayerFromBytes(PCM16(c, SampleRate, s.volume))
		s.players[c] = p
	}
	if err := p.Rewind(); err != nil {
		s.log.Warn().Err(err).Stringer("cue", c).Msg("rewind failed")
		return
	}
	p.Play()
}
