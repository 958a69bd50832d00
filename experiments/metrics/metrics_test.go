package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("keeps totals across decisions", func(t *testing.T) {
		c := NewCollector()

		c.Start()
		c.AddNodes(10)
		c.ReachDepth(2)
		c.ReachDepth(1)
		c.CompleteDepth(2, 7)
		first := c.Complete()

		c.Start()
		c.AddNodes(5)
		c.ReachDepth(3)
		second := c.Complete()

		require.Equal(t, SearchMetric{Nodes: 10, TotalNodes: 10, MaxDepth: 2, TotalMaxDepth: 2, CompletedDepth: 2, Value: 7, Duration: first.Duration}, first)
		require.Equal(t, 5, second.Nodes)
		require.Equal(t, 15, second.TotalNodes)
		require.Equal(t, 3, second.MaxDepth)
		require.Equal(t, 5, second.TotalMaxDepth)
		require.Equal(t, 0, second.CompletedDepth, "Per-turn counters should reset")
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddNodes(3)

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(w.Dir(), filepath.Join(root, "unit")))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Black: 2, White: 3,
		GameMetric: GameMetric{Size: 6, Winner: "White", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 9},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 2, Player: "Black", Move: "(2, 0) -> (0, 0)", SearchMetric: SearchMetric{Nodes: 4, Value: -3}},
	}}))

	games, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	require.Equal(t, "id,black,white,size,winner,start_time,end_time,duration,total_moves\n"+
		"1,2,3,6,White,2024-01-02T03:04:05Z,2024-01-02T03:04:06Z,1s,9\n", string(games))

	moves, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(moves), `1,2,Black,"(2, 0) -> (0, 0)",4,0,0,0,0,-3,0s`)
}
