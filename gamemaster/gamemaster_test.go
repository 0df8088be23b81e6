package gamemaster

import (
	"bytes"
	"io"
	"othello/game"
	"othello/searcher/agent"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("placement", func(t *testing.T) {
		move, err := ParseMove(" 2  4 ")
		require.NoError(t, err)
		require.Equal(t, game.PlaceMove(2, 4), move)
	})

	t.Run("pass", func(t *testing.T) {
		move, err := ParseMove("PASS")
		require.NoError(t, err)
		require.Equal(t, game.PassMove(), move)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "2", "a 4", "2 b", "1 2 3"} {
			_, err := ParseMove(s)
			require.Error(t, err, "Input %q should be rejected", s)
		}
	})

	t.Run("rejects coordinates off the board", func(t *testing.T) {
		_, err := ParseMove("8 0")
		require.ErrorIs(t, err, game.ErrOutOfBounds)
	})
}

func TestConsole(t *testing.T) {
	in := strings.NewReader("x\n2 3\n2 4\n")
	var out bytes.Buffer
	console := NewConsole(game.Black, agent.NewRandomAgent(), in, &out)

	state, err := console.Run(game.BoardFullRules{})

	require.ErrorIs(t, err, io.EOF, "Input ran out before the game ended")
	require.Equal(t, game.Black, state.CurrentPlayer)
	black, white := state.Position.Discs()
	require.Equal(t, 6, black+white, "One move by each side")
	require.Equal(t, game.BlackDisc, state.Position.Get(2, 4))
	require.Contains(t, out.String(), "expected \"row col\" or \"pass\"")
	require.Contains(t, out.String(), "illegal move")
}
