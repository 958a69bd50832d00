package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"konane/engine"
	"konane/experiments"
	"konane/experiments/metrics"
	"konane/game"
	"konane/meta"
	"konane/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.BOARD_SIZE, "Board edge length (even, 4 to 8)")
	black := flag.String("black", "human", "Black agent: human, random, minimax, alphabeta, id-minimax or id-alphabeta")
	white := flag.String("white", "id-alphabeta", "White agent, same choices as -black")
	depth := flag.Int("depth", meta.DEPTH, "Depth bound for minimax and alphabeta")
	duration := flag.Duration("time", meta.DURATION, "Time budget per move for iterative deepening")
	ordering := flag.Bool("ordering", true, "Sort moves by one-ply evaluation in alphabeta searches")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the random agent")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: strategies or ordering")
	games := flag.Int("games", experiments.NumGames, "Games per matchup in experiments")
	workers := flag.Int("workers", meta.WORKERS, "Games played at once in experiments")
	out := flag.String("out", "experiments", "Directory for experiment results")
	verbose := flag.Bool("v", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		r := experiments.NewRunner(
			experiments.WithGames(*games),
			experiments.WithBoardSize(*size),
			experiments.WithWorkers(*workers),
			experiments.WithOutputDir(*out),
		)
		var dir string
		var err error
		switch *experiment {
		case "strategies":
			dir, err = r.RunStrategyExperiment(ctx)
		case "ordering":
			dir, err = r.RunOrderingExperiment(ctx)
		default:
			err = fmt.Errorf("unknown experiment %q", *experiment)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Str("dir", dir).Msg("results stored")
		return
	}

	agents := map[game.Chip]player.Agent{}
	for color, kind := range map[game.Chip]string{game.Black: *black, game.White: *white} {
		if kind == "human" {
			agents[color] = player.NewHuman(os.Stdin, os.Stdout)
			continue
		}
		config := metrics.AgentConfig{Kind: kind, Depth: *depth, Ordering: *ordering}
		if kind == "id-minimax" || kind == "id-alphabeta" {
			config.Depth = 0
			config.Duration = *duration
		}
		agent, err := experiments.NewAgent(config, color, *seed+uint64(color))
		if err != nil {
			log.Fatal().Err(err).Str("player", color.Name()).Msg("bad agent")
		}
		agents[color] = agent
	}

	e, err := engine.LocalEngine(*size, agents[game.Black], agents[game.White], engine.WithOutput(os.Stdout))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up the game")
	}
	if _, _, _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}
