// Package sequence owns the target pattern, the player's attempt at it and
// the rules for growing, checking and clearing both.
package sequence

import (
	"fmt"
	"slices"

	"simon/internal/core"
)

// Outcome is the verdict on a single submitted panel.
type Outcome uint8

const (
	// Continue means the input matches so far but the round is unfinished.
	Continue Outcome = iota
	// RoundComplete means the whole sequence has been reproduced.
	RoundComplete
	// Mismatch means the panel differs from the expected one.
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case RoundComplete:
		return "round_complete"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Engine holds the sequence and the current round's input. The level is
// the length of the sequence.
type Engine struct {
	src      core.Source
	sequence []core.Panel
	input    []core.Panel
}

// NewEngine returns an empty engine drawing panels from src.
func NewEngine(src core.Source) *Engine {
	if src == nil {
		panic("sequence: nil random source")
	}
	return &Engine{src: src}
}

// Reset clears the sequence and the input.
func (e *Engine) Reset() {
	e.sequence = e.sequence[:0]
	e.input = e.input[:0]
}

// Extend appends one random panel and returns it.
func (e *Engine) Extend() core.Panel {
	p := core.RandomPanel(e.src)
	e.sequence = append(e.sequence, p)
	return p
}

// ClearInput discards the player's input for a new round.
func (e *Engine) ClearInput() { e.input = e.input[:0] }

// Submit records p as the player's next choice and checks it against the
// sequence. Submitting with an empty sequence, a full input or an invalid
// panel is a programming error and panics.
func (e *Engine) Submit(p core.Panel) Outcome {
	if !p.Valid() {
		panic(fmt.Sprintf("sequence: submit of invalid panel %d", uint8(p)))
	}
	if len(e.input) >= len(e.sequence) {
		panic(fmt.Sprintf("sequence: submit with input %d/%d", len(e.input), len(e.sequence)))
	}
	e.input = append(e.input, p)
	idx := len(e.input) - 1
	if e.sequence[idx] != p {
		return Mismatch
	}
	if len(e.input) == len(e.sequence) {
		return RoundComplete
	}
	return Continue
}

// Level is the number of panels in the sequence.
func (e *Engine) Level() int { return len(e.sequence) }

// Sequence returns a copy of the target sequence.
func (e *Engine) Sequence() []core.Panel { return slices.Clone(e.sequence) }

// Input returns a copy of the current round's input.
func (e *Engine) Input() []core.Panel { return slices.Clone(e.input) }

// ExpectedNext returns the panel the player must choose next. ok is false
// once the input is as long as the sequence.
func (e *Engine) ExpectedNext() (p core.Panel, ok bool) {
	if len(e.input) >= len(e.sequence) {
		return core.NoPanel, false
	}
	return e.sequence[len(e.input)], true
}
