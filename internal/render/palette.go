package render

import (
	"image/color"

	"simon/internal/core"
)

var (
	// Background fills everything that is not a panel.
	Background = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	// Foreground is the status text colour.
	Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// panelColors holds the lit and idle shade of each panel.
var panelColors = [core.PanelCount][2]color.RGBA{
	core.Green:  {{R: 0, G: 255, B: 0, A: 255}, {R: 0, G: 155, B: 0, A: 255}},
	core.Red:    {{R: 255, G: 0, B: 0, A: 255}, {R: 155, G: 0, B: 0, A: 255}},
	core.Yellow: {{R: 255, G: 255, B: 0, A: 255}, {R: 155, G: 155, B: 0, A: 255}},
	core.Blue:   {{R: 0, G: 0, B: 255, A: 255}, {R: 0, G: 0, B: 155, A: 255}},
}

// PanelColor returns the colour of p, bright when lit. Invalid panels get the
// background colour.
func PanelColor(p core.Panel, lit bool) color.RGBA {
	if !p.Valid() {
		return Background
	}
	if lit {
		return panelColors[p][0]
	}
	return panelColors[p][1]
}
