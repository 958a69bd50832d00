package experiments

import (
	"context"
	"fmt"
	"time"

	"konane/engine"
	"konane/experiments/metrics"
	"konane/game"
	"konane/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 100 * time.Millisecond
)

var strategyConfigs = []metrics.AgentConfig{
	{ID: 0, Kind: "random"},
	{ID: 1, Kind: "minimax", Depth: 3},
	{ID: 2, Kind: "alphabeta", Depth: 3},
	{ID: 3, Kind: "alphabeta", Depth: 3, Ordering: true},
	{ID: 4, Kind: "id-minimax", Duration: TimeBudget},
	{ID: 5, Kind: "id-alphabeta", Duration: TimeBudget},
	{ID: 6, Kind: "id-alphabeta", Duration: TimeBudget, Ordering: true},
}

type Option func(r *Runner)

// Runner plays matchups between agent configs and stores the results as CSV.
type Runner struct {
	games     int
	size      int
	workers   int
	outputDir string
}

func WithGames(games int) Option {
	return func(r *Runner) {
		if games > 0 {
			r.games = games
		}
	}
}

func WithBoardSize(size int) Option {
	return func(r *Runner) {
		if size > 0 {
			r.size = size
		}
	}
}

func WithWorkers(workers int) Option {
	return func(r *Runner) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

func WithOutputDir(dir string) Option {
	return func(r *Runner) {
		if dir != "" {
			r.outputDir = dir
		}
	}
}

func NewRunner(options ...Option) *Runner {
	r := &Runner{ // Default values
		games:     NumGames,
		size:      meta.BOARD_SIZE,
		workers:   meta.WORKERS,
		outputDir: "experiments",
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// RunStrategyExperiment pairs every search strategy against the random
// baseline and against each other.
func (r *Runner) RunStrategyExperiment(ctx context.Context) (string, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for i, config1 := range strategyConfigs {
		for _, config2 := range strategyConfigs[i+1:] {
			matchUps = append(matchUps, [2]metrics.AgentConfig{config1, config2})
		}
	}
	return r.Run(ctx, "strategies", strategyConfigs, matchUps)
}

// RunOrderingExperiment measures how move ordering changes alpha-beta's
// node counts at equal depth.
func (r *Runner) RunOrderingExperiment(ctx context.Context) (string, error) {
	plain := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: 4}
	ordered := metrics.AgentConfig{ID: 2, Kind: "alphabeta", Depth: 4, Ordering: true}
	configs := []metrics.AgentConfig{plain, ordered}
	matchUps := [][2]metrics.AgentConfig{{plain, ordered}}
	return r.Run(ctx, "ordering", configs, matchUps)
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays r.games games per matchup, alternating colors, on up to
// r.workers goroutines. It returns the directory the CSV files were written to.
func (r *Runner) Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	results := make([]gameResult, len(matchUps)*r.games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for mi, matchUp := range matchUps {
		for i := 0; i < r.games; i++ {
			id := mi*r.games + i
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}

			mi, i := mi, i // per-iteration copies (Go 1.22 loopvar semantics)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, r.games)

				result, err := r.runGame(id, black, white)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[id] = result

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		moveRecords = append(moveRecords, result.moves...)
	}
	return r.store(name, configs, gameRecords, moveRecords)
}

// runGame plays one game. Agents are built per game since searchers keep
// per-agent totals.
func (r *Runner) runGame(id int, black, white metrics.AgentConfig) (gameResult, error) {
	blackAgent, err := NewAgent(black, game.Black, uint64(2*id+1))
	if err != nil {
		return gameResult{}, err
	}
	whiteAgent, err := NewAgent(white, game.White, uint64(2*id+2))
	if err != nil {
		return gameResult{}, err
	}
	e, err := engine.LocalEngine(r.size, blackAgent, whiteAgent)
	if err != nil {
		return gameResult{}, err
	}

	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}

	result := gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Black:      black.ID,
			White:      white.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		result.moves = append(result.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return result, nil
}

func (r *Runner) store(name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(r.outputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
