package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"konane/game"
	"konane/searcher"

	"github.com/stretchr/testify/require"
)

func jumpBoard(t *testing.T) *game.Board {
	b, err := game.NewBoard(4)
	require.NoError(t, err)
	require.NoError(t, b.Apply(game.Removal(0, 0)))
	require.NoError(t, b.Apply(game.Removal(0, 1)))
	return b
}

func TestHuman(t *testing.T) {
	t.Run("re-prompts until a legal move is entered", func(t *testing.T) {
		b := jumpBoard(t)
		hash := b.Hash()
		in := strings.NewReader("hello\n1 1 0 0\n2 0 0 0\n")
		var out bytes.Buffer

		move, _, err := NewHuman(in, &out).FindMove(b)

		require.NoError(t, err)
		require.Equal(t, game.NewMove(2, 0, 0, 0), move)
		require.Equal(t, hash, b.Hash(), "Human agent should not apply the move")
		require.Contains(t, out.String(), "Turn 2, legal moves (1):\n(2, 0) -> (0, 0)\n")
		require.Contains(t, out.String(), "bad input")
		require.Contains(t, out.String(), "Move (1, 1) -> (0, 0) is illegal")
		require.Contains(t, out.String(), game.ErrNotCardinal.Error())
	})

	t.Run("accepts a final line without newline", func(t *testing.T) {
		move, _, err := NewHuman(strings.NewReader("2 0 0 0"), io.Discard).FindMove(jumpBoard(t))

		require.NoError(t, err)
		require.Equal(t, game.NewMove(2, 0, 0, 0), move)
	})

	t.Run("fails when input runs out", func(t *testing.T) {
		_, _, err := NewHuman(strings.NewReader("0 0 0 0\n"), io.Discard).FindMove(jumpBoard(t))

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestRandom(t *testing.T) {
	t.Run("plays legal moves to the end of the game", func(t *testing.T) {
		b, _ := game.NewBoard(6)
		agent := NewRandom(1)

		for b.Winner() == game.None {
			move, _, err := agent.FindMove(b)
			require.NoError(t, err)
			require.True(t, b.IsLegal(move))
			require.NoError(t, b.Apply(move))
		}

		_, _, err := agent.FindMove(b)
		require.ErrorIs(t, err, searcher.ErrNoMove)
	})

	t.Run("same seed same game", func(t *testing.T) {
		b1, _ := game.NewBoard(6)
		b2, _ := game.NewBoard(6)
		a1, a2 := NewRandom(99), NewRandom(99)

		for b1.Winner() == game.None {
			m1, _, err := a1.FindMove(b1)
			require.NoError(t, err)
			m2, _, err := a2.FindMove(b2)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
			require.NoError(t, b1.Apply(m1))
			require.NoError(t, b2.Apply(m2))
		}
	})
}
