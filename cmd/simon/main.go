//go:build ebiten

package main

import (
	"errors"
	"flag"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"simon/internal/app"
	"simon/internal/audio"
	"simon/internal/core"
	"simon/internal/round"
	"simon/internal/sequence"
	"simon/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("logger")
	}
	defer closer.Close()
	log.Logger = logger

	seed := cfg.SeedOrNow(time.Now())
	machine := round.NewMachine(sequence.NewEngine(core.NewRNG(seed)), logger)

	var sounds round.Sounder = audio.Silent{}
	if v := cfg.EffectiveVolume(); v > 0 {
		sounds = audio.NewSpeaker(v, logger)
	}

	game := app.New(machine, sounds, logger)
	ebiten.SetWindowTitle("Simon")
	ebiten.SetTPS(round.TickRate)
	ebiten.SetWindowSize(
		int(math.Round(ui.WindowWidth*cfg.Scale)),
		int(math.Round(ui.WindowHeight*cfg.Scale)),
	)

	log.Info().Int64("seed", seed).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
