// Package audio synthesises the game's sound cues.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"simon/internal/core"
)

// SampleRate is the default output rate for both audio back ends.
const SampleRate = 44100

// Tone describes a synthesised cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	// Buzz adds odd harmonics for a harsh, square-ish sound.
	Buzz bool
}

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

var tones = [core.CueCount]Tone{
	core.Green:    {Freq: 415, Duration: 400 * time.Millisecond},
	core.Red:      {Freq: 310, Duration: 400 * time.Millisecond},
	core.Yellow:   {Freq: 252, Duration: 400 * time.Millisecond},
	core.Blue:     {Freq: 209, Duration: 400 * time.Millisecond},
	core.CueWrong: {Freq: 42, Duration: 800 * time.Millisecond, Buzz: true},
}

// ToneFor returns the tone played for c.
func ToneFor(c core.Cue) Tone {
	if int(c) >= len(tones) {
		return Tone{}
	}
	return tones[c]
}

// Samples renders c as mono samples in [-1, 1] scaled by volume.
func Samples(c core.Cue, rate int, volume float64) []float64 {
	tone := ToneFor(c)
	if rate <= 0 || tone.Duration <= 0 {
		return nil
	}
	volume = clamp01(volume)
	n := int(int64(rate) * int64(tone.Duration) / int64(time.Second))
	att := int(int64(rate) * int64(attack) / int64(time.Second))
	rel := int(int64(rate) * int64(release) / int64(time.Second))

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		v := math.Sin(2 * math.Pi * tone.Freq * t)
		if tone.Buzz {
			v = 0.6*v + 0.3*math.Sin(2*math.Pi*tone.Freq*3*t) + 0.1*math.Sin(2*math.Pi*tone.Freq*5*t)
		}
		env := 1.0
		if att > 0 && i < att {
			env = float64(i) / float64(att)
		}
		if rel > 0 && i >= n-rel {
			env = math.Min(env, float64(n-i)/float64(rel))
		}
		out[i] = 0.5 * v * env * volume
	}
	return out
}

// PCM16 renders c as signed 16-bit little-endian stereo frames.
func PCM16(c core.Cue, rate int, volume float64) []byte {
	samples := Samples(c, rate, volume)
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(math.Round(s * math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[4*i:], v)
		binary.LittleEndian.PutUint16(buf[4*i+2:], v)
	}
	return buf
}

// Silent discards every cue. It stands in when audio is muted or the output
// device could not be opened.
type Silent struct{}

// PlaySound does nothing.
func (Silent) PlaySound(core.Cue) {}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
