package round

import (
	"time"

	"github.com/rs/zerolog"

	"simon/internal/core"
	"simon/internal/sequence"
)

// Transition is the result of handling one event. Script must be executed in
// full by the presentation layer before the next event is delivered.
type Transition struct {
	From   State
	To     State
	Script Script
}

// Changed reports whether the state changed.
func (t Transition) Changed() bool { return t.From != t.To }

// Snapshot is a read-only view of the game for rendering and tests.
type Snapshot struct {
	State    State
	Level    int
	Message  string
	Sequence []core.Panel
	Input    []core.Panel
	Deadline time.Time
	Cause    Cause
}

// Machine is the round state machine. It owns the round state and the turn
// deadline; the engine owns the sequence. It is driven from a single control
// loop and is not safe for concurrent use.
type Machine struct {
	engine   *sequence.Engine
	state    State
	deadline time.Time
	message  string
	cause    Cause
	log      zerolog.Logger
}

// NewMachine returns a machine in Idle driving engine.
func NewMachine(engine *sequence.Engine, log zerolog.Logger) *Machine {
	return &Machine{
		engine:  engine,
		state:   Idle,
		message: MsgStart,
		log:     log.With().Str("component", "round").Logger(),
	}
}

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Level returns the current level.
func (m *Machine) Level() int { return m.engine.Level() }

// Message returns the current status message.
func (m *Machine) Message() string { return m.message }

// Deadline returns the turn deadline. ok is false outside AwaitingInput.
func (m *Machine) Deadline() (deadline time.Time, ok bool) {
	if m.state != AwaitingInput {
		return time.Time{}, false
	}
	return m.deadline, true
}

// Snapshot captures the machine and engine state.
func (m *Machine) Snapshot() Snapshot {
	deadline, _ := m.Deadline()
	return Snapshot{
		State:    m.state,
		Level:    m.engine.Level(),
		Message:  m.message,
		Sequence: m.engine.Sequence(),
		Input:    m.engine.Input(),
		Deadline: deadline,
		Cause:    m.cause,
	}
}

// Handle applies ev at time now. Quit is not interpreted here; runners stop
// on it in every state.
func (m *Machine) Handle(ev Event, now time.Time) Transition {
	from := m.state
	var script Script
	switch m.state {
	case Idle:
		script = m.handleIdle(ev)
	case Presenting:
		script = m.handlePresenting(ev, now)
	case AwaitingInput:
		script = m.handleAwaiting(ev, now)
	case Failed:
		script = m.handleFailed(ev)
	}
	if from != m.state {
		m.log.Debug().
			Stringer("from", from).
			Stringer("to", m.state).
			Stringer("event", ev).
			Int("level", m.engine.Level()).
			Msg("transition")
	}
	return Transition{From: from, To: m.state, Script: script}
}

// Dispatch delivers a tick followed by events, stopping at the first event
// that produces a script. At most one transition happens per call and the
// events after it are dropped.
func (m *Machine) Dispatch(events []Event, now time.Time) Transition {
	tr := m.Handle(Tick(), now)
	if tr.Changed() || len(tr.Script) > 0 {
		return tr
	}
	for _, ev := range events {
		if ev.Kind == EventQuit || ev.Kind == EventTick {
			continue
		}
		tr = m.Handle(ev, now)
		if tr.Changed() || len(tr.Script) > 0 {
			return tr
		}
	}
	return tr
}

func (m *Machine) handleIdle(ev Event) Script {
	if ev.Kind != EventKey {
		return nil
	}
	return m.start()
}

func (m *Machine) handleFailed(ev Event) Script {
	if ev.Kind != EventKey {
		return nil
	}
	m.state = Idle
	return m.start()
}

// start begins a fresh game at level 1.
func (m *Machine) start() Script {
	m.engine.Reset()
	m.engine.Extend()
	m.state = Presenting
	m.message = MsgWatch
	m.log.Info().Msg("game started")
	s := Script{Message(MsgWatch)}
	return append(s, presentation(m.engine.Sequence())...)
}

// handlePresenting runs once the presentation script has played: the first
// tick afterwards opens the player's turn.
func (m *Machine) handlePresenting(ev Event, now time.Time) Script {
	if ev.Kind != EventTick {
		return nil
	}
	m.engine.ClearInput()
	m.deadline = now.Add(TurnTimeout)
	m.state = AwaitingInput
	m.message = MsgYourTurn
	return Script{Message(MsgYourTurn)}
}

func (m *Machine) handleAwaiting(ev Event, now time.Time) Script {
	if now.After(m.deadline) {
		m.log.Info().Int("level", m.engine.Level()).Msg("turn timed out")
		return m.fail(Timeout, MsgTooSlow)
	}
	if ev.Kind != EventPanel || !ev.Panel.Valid() {
		return nil
	}

	flash := Flash(ev.Panel)
	switch outcome := m.engine.Submit(ev.Panel); outcome {
	case sequence.Mismatch:
		expected := m.engine.Sequence()[len(m.engine.Input())-1]
		m.log.Info().
			Int("level", m.engine.Level()).
			Stringer("got", ev.Panel).
			Stringer("want", expected).
			Msg("wrong panel")
		return append(flash, m.fail(WrongPanel, MsgWrong)...)
	case sequence.RoundComplete:
		m.engine.Extend()
		m.state = Presenting
		m.message = MsgGoodJob
		m.log.Info().Int("level", m.engine.Level()).Msg("round complete")
		s := append(flash, Message(MsgGoodJob), Pause(SuccessPause))
		return append(s, presentation(m.engine.Sequence())...)
	default:
		m.deadline = now.Add(flash.Duration() + TurnTimeout)
		return flash
	}
}

func (m *Machine) fail(cause Cause, msg string) Script {
	m.state = Failed
	m.cause = cause
	m.message = msg
	return failure(msg)
}
