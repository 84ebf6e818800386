// Package term presents the game in a terminal using tcell.
package term

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"simon/internal/core"
	"simon/internal/render"
	"simon/internal/round"
)

// statusRows is the number of text rows above the board.
const statusRows = 3

// eventBuffer bounds the raw events waiting for the loop; extra events are
// dropped, which only ever happens while a script blocks the loop.
const eventBuffer = 128

// Screen implements round.Presenter on a tcell screen.
type Screen struct {
	screen tcell.Screen
	clock  core.Clock
	sounds round.Sounder
	events chan tcell.Event
	layout core.Board
	frame  round.Frame
	mouse  tcell.ButtonMask
	log    zerolog.Logger
}

var _ round.Presenter = (*Screen)(nil)

// New initialises screen and starts reading its events. Close releases it.
func New(screen tcell.Screen, clock core.Clock, sounds round.Sounder, log zerolog.Logger) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(rgb(render.Background)))

	s := &Screen{
		screen: screen,
		clock:  clock,
		sounds: sounds,
		events: make(chan tcell.Event, eventBuffer),
		frame:  round.Frame{Highlight: core.NoPanel},
		log:    log.With().Str("component", "term").Logger(),
	}
	s.resize()
	go s.read()
	return s, nil
}

// Close restores the terminal. The reader goroutine exits once PollEvent
// returns nil.
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) read() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		select {
		case s.events <- ev:
		default:
		}
	}
}

// Layout returns the board's cell regions.
func (s *Screen) Layout() core.Board { return s.layout }

// PollEvents drains pending terminal events without blocking.
func (s *Screen) PollEvents() []round.Event {
	var out []round.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(out, round.Quit())
			}
			if re, ok := s.translate(ev); ok {
				out = append(out, re)
			}
		default:
			return out
		}
	}
}

func (s *Screen) translate(ev tcell.Event) (round.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return round.Quit(), true
		case tcell.KeyRune:
			if ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
				return round.Quit(), true
			}
		}
		return round.Key(), true
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && s.mouse&tcell.Button1 == 0
		s.mouse = buttons
		if !pressed {
			return round.Event{}, false
		}
		x, y := ev.Position()
		if p := s.layout.PanelAt(x, y); p.Valid() {
			return round.Press(p), true
		}
	case *tcell.EventResize:
		s.resize()
		s.screen.Sync()
		s.RenderFrame(s.frame)
	}
	return round.Event{}, false
}

func (s *Screen) resize() {
	w, h := s.screen.Size()
	s.layout = core.NewBoard(0, statusRows, w, h-statusRows)
}

// RenderFrame draws f.
func (s *Screen) RenderFrame(f round.Frame) {
	s.frame = f
	s.screen.Clear()
	w, _ := s.screen.Size()
	text := tcell.StyleDefault.Foreground(rgb(render.Foreground)).Background(rgb(render.Background))
	s.center(0, w, fmt.Sprintf("Level: %d", f.Level), text.Bold(true))
	s.center(1, w, f.Message, text)

	for _, p := range core.Panels {
		r := s.layout.Rect(p)
		style := tcell.StyleDefault.Background(rgb(render.PanelColor(p, f.Highlight == p)))
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				s.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	s.screen.Show()
}

func (s *Screen) center(row, width int, msg string, style tcell.Style) {
	runes := []rune(msg)
	x := (width - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		s.screen.SetContent(x+i, row, r, nil, style)
	}
}

// PlaySound forwards c to the sound output.
func (s *Screen) PlaySound(c core.Cue) {
	if s.sounds != nil {
		s.sounds.PlaySound(c)
	}
}

// Now returns the clock's time.
func (s *Screen) Now() time.Time { return s.clock.Now() }

// Sleep blocks on the clock.
func (s *Screen) Sleep(d time.Duration) { s.clock.Sleep(d) }

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
