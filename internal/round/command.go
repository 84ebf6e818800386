package round

import (
	"time"

	"simon/internal/core"
)

// CommandKind classifies presentation commands.
type CommandKind uint8

const (
	// CmdHighlight lights a panel, or turns all panels off with NoPanel.
	CmdHighlight CommandKind = iota
	// CmdSound plays a cue.
	CmdSound
	// CmdMessage replaces the status message.
	CmdMessage
	// CmdPause holds the current picture for Duration.
	CmdPause
)

// Command is one instruction for the presentation layer.
type Command struct {
	Kind     CommandKind
	Panel    core.Panel
	Cue      core.Cue
	Text     string
	Duration time.Duration
}

// Highlight lights p; NoPanel clears the highlight.
func Highlight(p core.Panel) Command { return Command{Kind: CmdHighlight, Panel: p} }

// Sound plays c.
func Sound(c core.Cue) Command { return Command{Kind: CmdSound, Panel: core.NoPanel, Cue: c} }

// Message shows text in the status line.
func Message(text string) Command { return Command{Kind: CmdMessage, Panel: core.NoPanel, Text: text} }

// Pause holds the picture for d.
func Pause(d time.Duration) Command { return Command{Kind: CmdPause, Panel: core.NoPanel, Duration: d} }

// Script is an ordered list of commands executed without interruption.
type Script []Command

// Duration is the total time the script takes to play.
func (s Script) Duration() time.Duration {
	var total time.Duration
	for _, c := range s {
		if c.Kind == CmdPause {
			total += c.Duration
		}
	}
	return total
}

// Highlights returns the panels lit by the script, in order.
func (s Script) Highlights() []core.Panel {
	var out []core.Panel
	for _, c := range s {
		if c.Kind == CmdHighlight && c.Panel.Valid() {
			out = append(out, c.Panel)
		}
	}
	return out
}

// Flash lights p with its sound, then turns it off again.
func Flash(p core.Panel) Script {
	return Script{
		Highlight(p),
		Sound(p.Cue()),
		Pause(FlashDuration),
		Highlight(core.NoPanel),
		Pause(FlashSettle),
	}
}

// presentation plays the whole sequence after a lead-in pause.
func presentation(seq []core.Panel) Script {
	s := make(Script, 0, 1+len(seq)*6)
	s = append(s, Pause(LeadInPause))
	for _, p := range seq {
		s = append(s, Flash(p)...)
		s = append(s, Pause(InterPanelPause))
	}
	return s
}

func failure(msg string) Script {
	return Script{
		Highlight(core.NoPanel),
		Message(msg),
		Sound(core.CueWrong),
		Pause(FailurePause),
	}
}
