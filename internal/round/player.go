package round

import (
	"time"

	"simon/internal/core"
)

// Player executes scripts without blocking, for hosts that own the frame
// loop and call back once per frame. Pauses are laid end to end on a cursor
// so the script keeps its exact length regardless of frame timing.
type Player struct {
	out    Sounder
	queue  Script
	cursor time.Time
	frame  Frame
}

// NewPlayer returns an idle player sending cues to out.
func NewPlayer(out Sounder, message string) *Player {
	return &Player{out: out, frame: Frame{Message: message, Highlight: core.NoPanel}}
}

// Enqueue appends s to the commands still to run.
func (p *Player) Enqueue(s Script) {
	p.queue = append(p.queue, s...)
}

// Busy reports whether a script is still playing.
func (p *Player) Busy() bool { return len(p.queue) > 0 || !p.cursor.IsZero() }

// Frame returns the picture produced by the commands run so far.
func (p *Player) Frame() Frame { return p.frame }

// Advance runs every command due at now. It returns true once the queue is
// empty and its last pause has elapsed; only then may the host deliver new
// events.
func (p *Player) Advance(now time.Time) bool {
	if p.cursor.IsZero() {
		if len(p.queue) == 0 {
			return true
		}
		p.cursor = now
	}
	for len(p.queue) > 0 && !now.Before(p.cursor) {
		c := p.queue[0]
		p.queue = p.queue[1:]
		switch c.Kind {
		case CmdSound:
			if p.out != nil {
				p.out.PlaySound(c.Cue)
			}
		case CmdPause:
			p.cursor = p.cursor.Add(c.Duration)
		default:
			p.frame.apply(c)
		}
	}
	if len(p.queue) > 0 || now.Before(p.cursor) {
		return false
	}
	p.cursor = time.Time{}
	return true
}
