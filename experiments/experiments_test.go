package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"konane/experiments/metrics"
	"konane/game"
	"konane/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("plays every game and stores the records", func(t *testing.T) {
		random := metrics.AgentConfig{ID: 1, Kind: "random"}
		minimax := metrics.AgentConfig{ID: 2, Kind: "minimax", Depth: 1}
		r := NewRunner(WithGames(4), WithBoardSize(4), WithWorkers(2), WithOutputDir(t.TempDir()))

		dir, err := r.Run(context.Background(), "test", []metrics.AgentConfig{random, minimax},
			[][2]metrics.AgentConfig{{random, minimax}})

		require.NoError(t, err)
		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, configs, 3, "Header plus one row per agent")
		require.Equal(t, []string{"2", "minimax", "1", "0s", "false"}, configs[2])

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 5, "Header plus one row per game")
		for i, row := range games[1:] {
			if i%2 == 0 {
				require.Equal(t, []string{"1", "2"}, row[1:3], "Even games should give the first agent Black")
			} else {
				require.Equal(t, []string{"2", "1"}, row[1:3], "Odd games should swap colors")
			}
			require.Contains(t, []string{"Black", "White"}, row[4])
		}

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.GreaterOrEqual(t, len(moves), 1+4*2, "Every game lasts at least two moves")
		require.Equal(t, "game", moves[0][0])
	})

	t.Run("reports a bad agent config", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 9, Kind: "oracle"}
		r := NewRunner(WithGames(1), WithBoardSize(4), WithOutputDir(t.TempDir()))

		_, err := r.Run(context.Background(), "bad", []metrics.AgentConfig{bad}, [][2]metrics.AgentConfig{{bad, bad}})

		require.ErrorContains(t, err, `unknown kind "oracle"`)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		random := metrics.AgentConfig{ID: 1, Kind: "random"}
		r := NewRunner(WithGames(2), WithBoardSize(4), WithOutputDir(t.TempDir()))

		_, err := r.Run(ctx, "cancelled", []metrics.AgentConfig{random}, [][2]metrics.AgentConfig{{random, random}})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewAgent(t *testing.T) {
	t.Run("builds each search strategy", func(t *testing.T) {
		for kind, config := range map[string]metrics.AgentConfig{
			"minimax(depth=2)":                 {Kind: "minimax", Depth: 2},
			"alphabeta(depth=2, ordering)":     {Kind: "alphabeta", Depth: 2, Ordering: true},
			"id-minimax(time=1s)":              {Kind: "id-minimax", Duration: time.Second},
			"id-alphabeta(depth=5, time=10ms)": {Kind: "id-alphabeta", Depth: 5, Duration: 10 * time.Millisecond},
		} {
			agent, err := NewAgent(config, game.White, 1)

			require.NoError(t, err)
			require.IsType(t, &searcher.Searcher{}, agent)
			require.Equal(t, kind, agent.(*searcher.Searcher).String())
			require.Equal(t, game.White, agent.(*searcher.Searcher).Player())
		}
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		_, err := NewAgent(metrics.AgentConfig{Kind: "alphabeta"}, game.Black, 1)
		require.Error(t, err)

		_, err = NewAgent(metrics.AgentConfig{Kind: "id-minimax", Depth: 3}, game.Black, 1)
		require.Error(t, err)
	})
}
