package engine

import (
	"bytes"
	"errors"
	"testing"

	"konane/experiments/metrics"
	"konane/game"
	"konane/player"
	"konane/searcher"

	"github.com/stretchr/testify/require"
)

type stubAgent struct {
	move game.Move
	err  error
}

func (a stubAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	return a.move, metrics.SearchMetric{}, a.err
}

func TestLocalEngine(t *testing.T) {
	t.Run("rejects a bad board size", func(t *testing.T) {
		_, err := LocalEngine(5, player.NewRandom(1), player.NewRandom(2))

		var sizeErr *game.InvalidBoardSizeError
		require.True(t, errors.As(err, &sizeErr))
	})

	t.Run("requires both agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(4, player.NewRandom(1), nil) })
	})
}

func TestRun(t *testing.T) {
	t.Run("random agents play a full game", func(t *testing.T) {
		e, err := LocalEngine(6, player.NewRandom(1), player.NewRandom(2))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.NotEqual(t, game.None, winner)
		require.Equal(t, e.Board.Winner(), winner)
		require.Equal(t, winner.Name(), gameMetric.Winner)
		require.Equal(t, e.Board.Turn(), gameMetric.TotalMoves)
		require.Len(t, moveMetrics, e.Board.Turn())
		require.Len(t, e.Updates(), e.Board.Turn())

		// Replaying the updates reproduces every recorded position.
		replay, _ := game.NewBoard(6)
		for i, u := range e.Updates() {
			require.Equal(t, i, u.Turn)
			require.Equal(t, replay.Player(), u.Player)
			require.Equal(t, u.Move.String(), moveMetrics[i].Move)
			require.NoError(t, replay.Apply(u.Move))
			require.Equal(t, u.Hash, replay.Hash())
		}
		require.True(t, replay.Equal(e.Board))
	})

	t.Run("searcher plays the winning move and the game is printed", func(t *testing.T) {
		board, err := game.ParseBoard([]string{"bw..", "....", "....", "...."}, 2)
		require.NoError(t, err)
		var out bytes.Buffer
		e, err := LocalEngine(4, searcher.NewAlphaBeta(game.Black, 3, true), player.NewRandom(1),
			WithBoard(board), WithOutput(&out))
		require.NoError(t, err)

		winner, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, winner)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, game.Win, moveMetrics[0].Value)
		require.Equal(t, "Black", moveMetrics[0].Player)
		require.Contains(t, out.String(), "Black plays (0, 0) -> (0, 2)")
		require.Contains(t, out.String(), "Black wins after 3 turns")
		require.Contains(t, out.String(), "    0 1 2 3 \n")
	})

	t.Run("agent errors stop the game", func(t *testing.T) {
		failure := errors.New("boom")
		e, _ := LocalEngine(4, stubAgent{err: failure}, player.NewRandom(1))

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, failure)
		require.Empty(t, e.Updates())
	})

	t.Run("illegal moves stop the game", func(t *testing.T) {
		e, _ := LocalEngine(4, stubAgent{move: game.Removal(0, 1)}, player.NewRandom(1))

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrFirstRemoval)
		require.Equal(t, 0, e.Board.Turn(), "Rejected move should not be applied")
	})

	t.Run("turn limit", func(t *testing.T) {
		e, _ := LocalEngine(8, player.NewRandom(1), player.NewRandom(2), WithMaxTurns(3))

		_, _, moveMetrics, err := e.Run()

		require.ErrorContains(t, err, "exceeded 3 turns")
		require.Len(t, moveMetrics, 3)
	})
}
