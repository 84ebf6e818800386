package core

// Panel identifies one of the four coloured targets on the board.
type Panel uint8

const (
	// Green is the top-left panel.
	Green Panel = iota
	// Red is the top-right panel.
	Red
	// Yellow is the bottom-left panel.
	Yellow
	// Blue is the bottom-right panel.
	Blue
	// NoPanel marks the absence of a panel, e.g. a click outside the board
	// or a frame with nothing highlighted.
	NoPanel
)

// PanelCount is the number of selectable panels.
const PanelCount = 4

// Panels lists every selectable panel in board order.
var Panels = [PanelCount]Panel{Green, Red, Yellow, Blue}

var panelNames = [...]string{
	Green:   "green",
	Red:     "red",
	Yellow:  "yellow",
	Blue:    "blue",
	NoPanel: "none",
}

// String returns the lowercase colour name of the panel.
func (p Panel) String() string {
	if int(p) < len(panelNames) {
		return panelNames[p]
	}
	return "invalid"
}

// Valid reports whether p is one of the four selectable panels.
func (p Panel) Valid() bool { return p < NoPanel }

// Cue returns the sound cue played when p flashes.
func (p Panel) Cue() Cue { return Cue(p) }

// Cue identifies a sound the presentation layer can play.
type Cue uint8

// CueWrong is the failure buzz. The panel cues share their panel's value.
const CueWrong Cue = Cue(NoPanel)

// CueCount is the number of distinct cues.
const CueCount = int(CueWrong) + 1

// String names the cue after its panel, or "wrong".
func (c Cue) String() string {
	if c == CueWrong {
		return "wrong"
	}
	return Panel(c).String()
}

// Size describes the dimensions of a drawing surface.
type Size struct {
	W int
	H int
}
