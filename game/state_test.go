package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameState(t *testing.T) {
	t.Run("opening state", func(t *testing.T) {
		gs := NewGameState(nil)

		require.Equal(t, Black, gs.Player())
		require.Equal(t, []Move{PlaceMove(2, 4), PlaceMove(3, 5), PlaceMove(4, 2), PlaceMove(5, 3)}, gs.LegalMoves())
		_, over := gs.Winner()
		require.False(t, over)
	})

	t.Run("play switches player and leaves the parent untouched", func(t *testing.T) {
		gs := NewGameState(nil)

		next := gs.Play(PlaceMove(2, 4)).(*GameState)

		require.Equal(t, White, next.Player())
		require.Equal(t, BlackDisc, next.Position.Get(3, 4))
		require.Equal(t, WhiteDisc, gs.Position.Get(3, 4))
		require.Equal(t, Black, gs.Player())
		require.NotNil(t, next.LastMove)
		require.Equal(t, PlaceMove(2, 4), *next.LastMove)
	})

	t.Run("illegal placement panics", func(t *testing.T) {
		gs := NewGameState(nil)
		require.Panics(t, func() { gs.Play(PlaceMove(0, 0)) })
	})

	t.Run("pass only when no placement exists", func(t *testing.T) {
		gs := NewGameState(nil)
		require.Panics(t, func() { gs.Play(PassMove()) })

		stuck := &GameState{
			Position: mustParse(t, `
w k - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -`),
			CurrentPlayer: Black,
			Rules:         BoardFullRules{},
		}
		require.Equal(t, []Move{PassMove()}, stuck.LegalMoves())

		next := stuck.Play(PassMove()).(*GameState)
		require.Equal(t, White, next.Player())
		require.Equal(t, 1, next.Passes)
		require.Equal(t, stuck.Position, next.Position)
	})

	t.Run("hash depends on player to move", func(t *testing.T) {
		black := GameState{Position: NewInitialPosition(), CurrentPlayer: Black}
		white := GameState{Position: NewInitialPosition(), CurrentPlayer: White}
		require.NotEqual(t, black.Hash(), white.Hash())
		require.Equal(t, black.Hash(), black.Copy().Hash())
	})
}

func TestRules(t *testing.T) {
	blocked := mustParse(t, `
k - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - -
- - - - - - - w`)

	t.Run("board full rules ignore passes", func(t *testing.T) {
		gs := GameState{Position: blocked, CurrentPlayer: Black, Passes: 2, Rules: BoardFullRules{}}
		_, over := gs.Winner()
		require.False(t, over)
		require.Equal(t, []Move{PassMove()}, gs.LegalMoves())
	})

	t.Run("no moves rules end after two passes", func(t *testing.T) {
		gs := GameState{Position: blocked, CurrentPlayer: Black, Passes: 1, Rules: NoMovesRules{}}
		_, over := gs.Winner()
		require.False(t, over)

		next := gs.Play(PassMove())
		outcome, over := next.Winner()
		require.True(t, over)
		require.Equal(t, Draw, outcome)
		require.Empty(t, next.LegalMoves())
	})

	t.Run("full board ends under both rule sets", func(t *testing.T) {
		for _, rules := range []Rules{BoardFullRules{}, NoMovesRules{}} {
			gs := GameState{Position: fullBoard(33), CurrentPlayer: White, Rules: rules}
			outcome, over := gs.Winner()
			require.True(t, over)
			require.Equal(t, BlackWins, outcome)
		}
	})
}
