// Package round drives a game of Simon: it turns input and timer events into
// calls on the sequence engine and into scripts of presentation commands.
package round

import (
	"fmt"
	"time"

	"simon/internal/core"
)

// State is the current phase of play.
type State uint8

const (
	// Idle waits for a key to start a game.
	Idle State = iota
	// Presenting plays the sequence back to the player.
	Presenting
	// AwaitingInput collects the player's reproduction of the sequence.
	AwaitingInput
	// Failed shows the loss and waits for a key to restart.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Presenting:
		return "presenting"
	case AwaitingInput:
		return "awaiting_input"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Cause records why a round was lost.
type Cause uint8

const (
	// NoCause is reported before the first loss.
	NoCause Cause = iota
	// Timeout means the player let the turn deadline pass.
	Timeout
	// WrongPanel means the player picked a panel out of order.
	WrongPanel
)

func (c Cause) String() string {
	switch c {
	case NoCause:
		return "none"
	case Timeout:
		return "timeout"
	case WrongPanel:
		return "wrong_panel"
	default:
		return fmt.Sprintf("cause(%d)", uint8(c))
	}
}

// Timing of the game. These values define the feel of the game and are not
// configurable.
const (
	FlashDuration   = 400 * time.Millisecond
	FlashSettle     = 100 * time.Millisecond
	InterPanelPause = 200 * time.Millisecond
	LeadInPause     = 500 * time.Millisecond
	SuccessPause    = 500 * time.Millisecond
	FailurePause    = 1000 * time.Millisecond
	TurnTimeout     = 5 * time.Second
	TickRate        = 60
)

// Messages shown in the status line.
const (
	MsgStart    = "Press any key to start"
	MsgWatch    = "Watch the pattern..."
	MsgYourTurn = "Your turn! Repeat the pattern"
	MsgGoodJob  = "Good job! Watch next pattern..."
	MsgTooSlow  = "Too slow! Press any key to restart"
	MsgWrong    = "Wrong! Press any key to restart"
)

// EventKind classifies events delivered by the presentation layer.
type EventKind uint8

const (
	// EventTick is the per-frame timer event.
	EventTick EventKind = iota
	// EventKey is a key press; it starts or restarts a game.
	EventKey
	// EventPanel is an activation of a panel, e.g. a click inside it.
	EventPanel
	// EventQuit asks the runner to stop.
	EventQuit
)

// Event is an input or timer event.
type Event struct {
	Kind  EventKind
	Panel core.Panel
}

// Tick returns a timer event.
func Tick() Event { return Event{Kind: EventTick, Panel: core.NoPanel} }

// Key returns a start activation event.
func Key() Event { return Event{Kind: EventKey, Panel: core.NoPanel} }

// Press returns a panel activation event.
func Press(p core.Panel) Event { return Event{Kind: EventPanel, Panel: p} }

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit, Panel: core.NoPanel} }

func (e Event) String() string {
	switch e.Kind {
	case EventTick:
		return "tick"
	case EventKey:
		return "key"
	case EventPanel:
		return "panel:" + e.Panel.String()
	case EventQuit:
		return "quit"
	default:
		return fmt.Sprintf("event(%d)", uint8(e.Kind))
	}
}
