//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"simon/internal/core"
	"simon/internal/round"
	"simon/internal/ui"
)

// Game adapts the round state machine to the ebiten.Game interface. Scripts
// are played by a round.Player across frames; no input is read while one
// is in flight.
type Game struct {
	machine *round.Machine
	player  *round.Player
	board   *ui.Board
	layout  core.Board
	size    core.Size
	now     func() time.Time
	log     zerolog.Logger

	keys    []ebiten.Key
	touches []ebiten.TouchID
}

// New constructs a Game driving machine and sending cues to sounds.
func New(machine *round.Machine, sounds round.Sounder, log zerolog.Logger) *Game {
	size := core.Size{W: ui.WindowWidth, H: ui.WindowHeight}
	board := ui.NewBoard(size)
	return &Game{
		machine: machine,
		player:  round.NewPlayer(sounds, machine.Message()),
		board:   board,
		layout:  board.Layout(),
		size:    size,
		now:     time.Now,
		log:     log.With().Str("component", "app").Logger(),
	}
}

// Update handles per-frame logic and advances the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Debug().Msg("quit")
		return ebiten.Termination
	}

	now := g.now()
	if !g.player.Advance(now) {
		return nil
	}
	tr := g.machine.Dispatch(g.collect(), now)
	if len(tr.Script) > 0 {
		g.player.Enqueue(tr.Script)
		g.player.Advance(now)
	}
	return nil
}

// collect translates this frame's input into round events.
func (g *Game) collect() []round.Event {
	var events []round.Event

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k != ebiten.KeyEscape {
			events = append(events, round.Key())
			break
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p := g.layout.PanelAt(ebiten.CursorPosition()); p.Valid() {
			events = append(events, round.Press(p))
		}
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if p := g.layout.PanelAt(ebiten.TouchPosition(id)); p.Valid() {
			events = append(events, round.Press(p))
		}
	}
	return events
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.player.Frame()
	f.Level = g.machine.Level()
	g.board.Draw(screen, f)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W, g.size.H
}
