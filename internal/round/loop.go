package round

import (
	"context"

	"github.com/rs/zerolog"

	"simon/internal/core"
)

// Loop is the single-threaded control loop: poll, dispatch, present, render,
// wait for the next tick. Scripts run synchronously; input that arrives
// while a script plays is discarded.
type Loop struct {
	machine *Machine
	out     Presenter
	pacer   *core.FixedStep
	frame   Frame
	log     zerolog.Logger
}

// NewLoop returns a loop running machine against out at TickRate.
func NewLoop(machine *Machine, out Presenter, log zerolog.Logger) *Loop {
	return &Loop{
		machine: machine,
		out:     out,
		pacer:   core.NewFixedStep(TickRate),
		frame:   Frame{Level: machine.Level(), Message: machine.Message(), Highlight: core.NoPanel},
		log:     log.With().Str("component", "loop").Logger(),
	}
}

// Frame returns the last frame handed to the presenter.
func (l *Loop) Frame() Frame { return l.frame }

// Run loops until a quit event or until ctx is done. It returns nil on quit
// and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	l.pacer.Reset()
	l.render()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.Step() {
			l.log.Debug().Msg("quit")
			return nil
		}
		l.out.Sleep(l.pacer.Wait(l.out.Now()))
	}
}

// Step runs one tick. It returns false when a quit event was seen.
func (l *Loop) Step() bool {
	events := l.out.PollEvents()
	if hasQuit(events) {
		return false
	}
	tr := l.machine.Dispatch(events, l.out.Now())
	if len(tr.Script) > 0 {
		if !l.play(tr.Script) {
			return false
		}
	}
	l.render()
	return true
}

// play executes s and drops the input queued meanwhile. It returns false if
// a quit arrived during the script.
func (l *Loop) play(s Script) bool {
	l.frame.Level = l.machine.Level()
	for _, c := range s {
		switch c.Kind {
		case CmdSound:
			l.out.PlaySound(c.Cue)
		case CmdPause:
			l.out.Sleep(c.Duration)
		default:
			if l.frame.apply(c) {
				l.out.RenderFrame(l.frame)
			}
		}
	}
	return !hasQuit(l.out.PollEvents())
}

func (l *Loop) render() {
	l.frame.Level = l.machine.Level()
	l.frame.Message = l.machine.Message()
	l.out.RenderFrame(l.frame)
}

func hasQuit(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	return false
}
