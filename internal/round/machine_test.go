package round

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simon/internal/core"
	"simon/internal/sequence"
)

// picks replays a fixed list of panels as the random source.
type picks struct {
	panels []core.Panel
	pos    int
}

func (p *picks) IntN(n int) int {
	v := p.panels[p.pos%len(p.panels)]
	p.pos++
	return int(v) % n
}

func newMachine(panels ...core.Panel) *Machine {
	return NewMachine(sequence.NewEngine(&picks{panels: panels}), zerolog.Nop())
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// awaiting starts a game and opens the player's turn at now.
func awaiting(t *testing.T, m *Machine, now time.Time) {
	t.Helper()
	tr := m.Handle(Key(), now)
	require.Equal(t, Presenting, tr.To)
	tr = m.Handle(Tick(), now)
	require.Equal(t, AwaitingInput, tr.To)
}

func cues(s Script) []core.Cue {
	var out []core.Cue
	for _, c := range s {
		if c.Kind == CmdSound {
			out = append(out, c.Cue)
		}
	}
	return out
}

func TestStartPresentsFirstPanel(t *testing.T) {
	m := newMachine(core.Yellow)
	require.Equal(t, Idle, m.State())
	require.Equal(t, MsgStart, m.Message())

	tr := m.Handle(Key(), t0)
	assert.Equal(t, Idle, tr.From)
	assert.Equal(t, Presenting, tr.To)
	assert.True(t, tr.Changed())
	assert.Equal(t, 1, m.Level())
	assert.Equal(t, MsgWatch, m.Message())

	assert.Equal(t, []core.Panel{core.Yellow}, tr.Script.Highlights())
	assert.Equal(t, []core.Cue{core.Yellow.Cue()}, cues(tr.Script))
	assert.Equal(t, LeadInPause+FlashDuration+FlashSettle+InterPanelPause, tr.Script.Duration())
	assert.Equal(t, Message(MsgWatch), tr.Script[0])
}

func TestIdleIgnoresEverythingButKeys(t *testing.T) {
	m := newMachine(core.Green)
	for _, ev := range []Event{Tick(), Press(core.Green), Quit()} {
		tr := m.Handle(ev, t0)
		assert.False(t, tr.Changed(), ev.String())
		assert.Empty(t, tr.Script, ev.String())
	}
	assert.Zero(t, m.Level())
}

func TestPresentingIgnoresInput(t *testing.T) {
	m := newMachine(core.Green)
	m.Handle(Key(), t0)
	for _, ev := range []Event{Key(), Press(core.Green), Quit()} {
		tr := m.Handle(ev, t0)
		assert.Equal(t, Presenting, tr.To, ev.String())
		assert.Empty(t, tr.Script, ev.String())
	}
	assert.Empty(t, m.Snapshot().Input)
}

func TestTickAfterPresentationOpensTurn(t *testing.T) {
	m := newMachine(core.Green)
	m.Handle(Key(), t0)

	_, ok := m.Deadline()
	assert.False(t, ok)

	now := t0.Add(2 * time.Second)
	tr := m.Handle(Tick(), now)
	assert.Equal(t, AwaitingInput, tr.To)
	assert.Equal(t, Script{Message(MsgYourTurn)}, tr.Script)

	deadline, ok := m.Deadline()
	require.True(t, ok)
	assert.Equal(t, now.Add(TurnTimeout), deadline)
}

func TestRoundTripExtendsSequence(t *testing.T) {
	m := newMachine(core.Red, core.Blue)
	awaiting(t, m, t0)
	first := m.Snapshot().Sequence
	require.Equal(t, []core.Panel{core.Red}, first)

	tr := m.Handle(Press(core.Red), t0.Add(time.Second))
	assert.Equal(t, AwaitingInput, tr.From)
	assert.Equal(t, Presenting, tr.To)
	assert.Equal(t, MsgGoodJob, m.Message())

	snap := m.Snapshot()
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, []core.Panel{core.Red, core.Blue}, snap.Sequence)
	assert.Equal(t, first, snap.Sequence[:1])

	// Echo of the click, then the new presentation.
	assert.Equal(t, []core.Panel{core.Red, core.Red, core.Blue}, tr.Script.Highlights())
	want := FlashDuration + FlashSettle + SuccessPause + LeadInPause +
		2*(FlashDuration+FlashSettle+InterPanelPause)
	assert.Equal(t, want, tr.Script.Duration())

	tr = m.Handle(Tick(), t0.Add(5*time.Second))
	assert.Equal(t, AwaitingInput, tr.To)
	assert.Empty(t, m.Snapshot().Input)
}

func TestCorrectPartialInputResetsDeadline(t *testing.T) {
	m := newMachine(core.Green, core.Red)
	awaiting(t, m, t0)
	m.Handle(Press(core.Green), t0)
	now := t0.Add(3 * time.Second)
	m.Handle(Tick(), now)
	require.Equal(t, AwaitingInput, m.State())

	press := now.Add(4 * time.Second)
	tr := m.Handle(Press(core.Green), press)
	assert.False(t, tr.Changed())
	assert.Equal(t, Flash(core.Green), tr.Script)

	deadline, ok := m.Deadline()
	require.True(t, ok)
	assert.Equal(t, press.Add(FlashDuration+FlashSettle+TurnTimeout), deadline)

	// Past the original deadline but within the renewed one.
	tr = m.Handle(Tick(), press.Add(4*time.Second))
	assert.Equal(t, AwaitingInput, tr.To)
	assert.Equal(t, []core.Panel{core.Green}, m.Snapshot().Input)
}

func TestMismatchFails(t *testing.T) {
	m := newMachine(core.Green, core.Red)
	awaiting(t, m, t0)

	tr := m.Handle(Press(core.Blue), t0.Add(time.Second))
	assert.Equal(t, Failed, tr.To)
	assert.Equal(t, MsgWrong, m.Message())
	assert.Equal(t, WrongPanel, m.Snapshot().Cause)
	assert.Equal(t, []core.Cue{core.Blue.Cue(), core.CueWrong}, cues(tr.Script))
	assert.Equal(t, FlashDuration+FlashSettle+FailurePause, tr.Script.Duration())

	_, ok := m.Deadline()
	assert.False(t, ok)
}

func TestTimeoutFails(t *testing.T) {
	m := newMachine(core.Green)
	awaiting(t, m, t0)

	tr := m.Handle(Tick(), t0.Add(TurnTimeout))
	assert.Equal(t, AwaitingInput, tr.To, "deadline itself is still in time")

	tr = m.Handle(Tick(), t0.Add(5100*time.Millisecond))
	assert.Equal(t, Failed, tr.To)
	assert.Equal(t, Timeout, m.Snapshot().Cause)
	assert.Equal(t, MsgTooSlow, m.Message())
	assert.Equal(t, []core.Cue{core.CueWrong}, cues(tr.Script))
	assert.Equal(t, FailurePause, tr.Script.Duration())
	assert.Empty(t, m.Snapshot().Input)
}

func TestLateClickTimesOut(t *testing.T) {
	m := newMachine(core.Green)
	awaiting(t, m, t0)

	tr := m.Handle(Press(core.Green), t0.Add(6*time.Second))
	assert.Equal(t, Failed, tr.To)
	assert.Equal(t, Timeout, m.Snapshot().Cause)
	assert.Empty(t, m.Snapshot().Input)
}

func TestRestartAlwaysBeginsAtLevelOne(t *testing.T) {
	m := newMachine(core.Green, core.Green, core.Green, core.Yellow)
	awaiting(t, m, t0)
	m.Handle(Press(core.Green), t0)
	m.Handle(Tick(), t0)
	m.Handle(Press(core.Green), t0)
	m.Handle(Press(core.Green), t0)
	m.Handle(Tick(), t0)
	require.Equal(t, 3, m.Level())
	m.Handle(Press(core.Blue), t0)
	require.Equal(t, Failed, m.State())

	for _, ev := range []Event{Tick(), Press(core.Green)} {
		tr := m.Handle(ev, t0.Add(time.Minute))
		assert.Equal(t, Failed, tr.To, ev.String())
		assert.Empty(t, tr.Script, ev.String())
	}

	tr := m.Handle(Key(), t0.Add(time.Minute))
	assert.Equal(t, Failed, tr.From)
	assert.Equal(t, Presenting, tr.To)
	assert.Equal(t, 1, m.Level())
	assert.Len(t, m.Snapshot().Sequence, 1)
	assert.Empty(t, m.Snapshot().Input)
}

func TestDispatchTransitionsOncePerTick(t *testing.T) {
	m := newMachine(core.Green)
	tr := m.Dispatch([]Event{Key(), Key()}, t0)
	assert.Equal(t, Presenting, tr.To)
	assert.Equal(t, 1, m.Level())

	tr = m.Dispatch([]Event{Press(core.Green)}, t0)
	assert.Equal(t, AwaitingInput, tr.To, "tick opens the turn, the press is dropped")
	assert.Empty(t, m.Snapshot().Input)

	tr = m.Dispatch([]Event{Quit(), Press(core.Blue), Press(core.Green)}, t0)
	assert.Equal(t, Failed, tr.To)
	assert.Equal(t, []core.Panel{core.Blue}, m.Snapshot().Input)
}

func TestDispatchChecksTimeoutBeforeInput(t *testing.T) {
	m := newMachine(core.Green)
	awaiting(t, m, t0)
	tr := m.Dispatch([]Event{Press(core.Green)}, t0.Add(10*time.Second))
	assert.Equal(t, Failed, tr.To)
	assert.Equal(t, Timeout, m.Snapshot().Cause)
}

func TestDispatchIdleNoEvents(t *testing.T) {
	m := newMachine(core.Green)
	tr := m.Dispatch(nil, t0)
	assert.False(t, tr.Changed())
	assert.Empty(t, tr.Script)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "awaiting_input", AwaitingInput.String())
	assert.Equal(t, "state(9)", State(9).String())
	assert.Equal(t, "timeout", Timeout.String())
	assert.Equal(t, "panel:red", Press(core.Red).String())
	assert.Equal(t, "quit", Quit().String())
}
