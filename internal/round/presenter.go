package round

import (
	"time"

	"simon/internal/core"
)

// Frame is what the presentation layer draws.
type Frame struct {
	Level     int
	Message   string
	Highlight core.Panel
}

// Sounder plays sound cues.
type Sounder interface {
	PlaySound(c core.Cue)
}

// Presenter is the presentation layer the blocking Loop drives: drawing,
// audio, input polling and time. Calls are expected to succeed.
type Presenter interface {
	Sounder
	RenderFrame(f Frame)
	// PollEvents returns the pending events without blocking.
	PollEvents() []Event
	Now() time.Time
	Sleep(d time.Duration)
}

// apply updates the frame for a drawing command and reports whether the
// picture changed.
func (f *Frame) apply(c Command) bool {
	switch c.Kind {
	case CmdHighlight:
		if f.Highlight == c.Panel {
			return false
		}
		f.Highlight = c.Panel
		return true
	case CmdMessage:
		if f.Message == c.Text {
			return false
		}
		f.Message = c.Text
		return true
	}
	return false
}
