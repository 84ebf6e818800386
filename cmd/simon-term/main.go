package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"simon/internal/app"
	"simon/internal/audio"
	"simon/internal/audio/speaker"
	"simon/internal/core"
	"simon/internal/round"
	"simon/internal/sequence"
	"simon/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	// The terminal is the display; logs go to -log-file or nowhere.
	logger, closer, err := cfg.NewLogger(io.Discard)
	if err != nil {
		log.Fatal().Err(err).Msg("logger")
	}
	defer closer.Close()
	log.Logger = logger

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("simon-term exited")
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sounds round.Sounder = audio.Silent{}
	if v := cfg.EffectiveVolume(); v > 0 {
		sp, err := speaker.Open(v, log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable, playing silently")
		} else {
			defer sp.Close()
			sounds = sp
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	out, err := term.New(screen, core.SystemClock{}, sounds, log.Logger)
	if err != nil {
		return err
	}
	defer out.Close()

	seed := cfg.SeedOrNow(time.Now())
	log.Info().Int64("seed", seed).Msg("starting")
	machine := round.NewMachine(sequence.NewEngine(core.NewRNG(seed)), log.Logger)
	err = round.NewLoop(machine, out, log.Logger).Run(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
