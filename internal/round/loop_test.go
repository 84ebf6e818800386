package round

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simon/internal/core"
)

// fakePresenter records what the loop asks of the presentation layer and
// serves events from poll.
type fakePresenter struct {
	clock  *core.ManualClock
	poll   func() []Event
	frames []Frame
	sounds []core.Cue
}

func newFakePresenter(poll func() []Event) *fakePresenter {
	return &fakePresenter{clock: core.NewManualClock(t0), poll: poll}
}

func (f *fakePresenter) RenderFrame(fr Frame)  { f.frames = append(f.frames, fr) }
func (f *fakePresenter) PlaySound(c core.Cue)  { f.sounds = append(f.sounds, c) }
func (f *fakePresenter) PollEvents() []Event   { return f.poll() }
func (f *fakePresenter) Now() time.Time        { return f.clock.Now() }
func (f *fakePresenter) Sleep(d time.Duration) { f.clock.Sleep(d) }
func (f *fakePresenter) messages() map[string]bool {
	seen := map[string]bool{}
	for _, fr := range f.frames {
		seen[fr.Message] = true
	}
	return seen
}

// batches serves one slice per poll, then quits.
func batches(b ...[]Event) func() []Event {
	return func() []Event {
		if len(b) == 0 {
			return []Event{Quit()}
		}
		next := b[0]
		b = b[1:]
		return next
	}
}

func TestLoopRoundTrip(t *testing.T) {
	m := newMachine(core.Green, core.Blue)
	out := newFakePresenter(batches(
		[]Event{Key()},
		[]Event{Press(core.Green)}, // arrives during the presentation: dropped
		nil,
		nil,
		[]Event{Press(core.Green)},
		nil,
	))
	loop := NewLoop(m, out, zerolog.Nop())

	require.True(t, loop.Step())
	assert.Equal(t, Presenting, m.State())
	assert.Equal(t, LeadInPause+FlashDuration+FlashSettle+InterPanelPause, out.clock.Slept())

	require.True(t, loop.Step())
	assert.Equal(t, AwaitingInput, m.State())
	assert.Empty(t, m.Snapshot().Input)

	require.True(t, loop.Step())
	assert.Equal(t, Presenting, m.State())
	assert.Equal(t, 2, m.Level())

	assert.False(t, loop.Step(), "quit")
	assert.Equal(t, Presenting, m.State(), "quit causes no transition")

	assert.Equal(t, []core.Cue{core.Green.Cue(), core.Green.Cue(), core.Green.Cue(), core.Blue.Cue()}, out.sounds)
	assert.True(t, out.messages()[MsgGoodJob])

	highlights := 0
	for _, fr := range out.frames {
		if fr.Highlight.Valid() {
			highlights++
		}
	}
	assert.Equal(t, 4, highlights)
	assert.Equal(t, 2, loop.Frame().Level)
}

func TestLoopTimesOutWithoutInput(t *testing.T) {
	m := newMachine(core.Red)
	var out *fakePresenter
	polls := 0
	out = newFakePresenter(func() []Event {
		polls++
		if polls == 1 {
			return []Event{Key()}
		}
		if out.clock.Now().After(t0.Add(20 * time.Second)) {
			return []Event{Quit()}
		}
		return nil
	})
	loop := NewLoop(m, out, zerolog.Nop())

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, Failed, m.State())
	assert.Equal(t, Timeout, m.Snapshot().Cause)
	assert.True(t, out.messages()[MsgTooSlow])
	assert.Equal(t, []core.Cue{core.Red.Cue(), core.CueWrong}, out.sounds, "failure cue plays once")
	assert.Greater(t, polls, 300, "deadline is checked on every tick")
}

func TestLoopRestartsAfterFailure(t *testing.T) {
	m := newMachine(core.Green, core.Yellow)
	out := newFakePresenter(batches(
		[]Event{Key()}, nil,
		nil, nil,
		[]Event{Press(core.Red)}, []Event{Key()}, // key during the failure pause is dropped
		nil,
		[]Event{Key()}, nil,
	))
	loop := NewLoop(m, out, zerolog.Nop())

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, Presenting, m.State())
	assert.Equal(t, 1, m.Level())
	assert.Equal(t, []core.Panel{core.Yellow}, m.Snapshot().Sequence)
}

func TestLoopStopsOnCancel(t *testing.T) {
	m := newMachine(core.Green)
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	out := newFakePresenter(func() []Event {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	})
	err := NewLoop(m, out, zerolog.Nop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Idle, m.State())
}

func TestLoopRendersInitialFrame(t *testing.T) {
	m := newMachine(core.Green)
	out := newFakePresenter(batches())
	require.NoError(t, NewLoop(m, out, zerolog.Nop()).Run(context.Background()))
	require.NotEmpty(t, out.frames)
	assert.Equal(t, Frame{Level: 0, Message: MsgStart, Highlight: core.NoPanel}, out.frames[0])
}
