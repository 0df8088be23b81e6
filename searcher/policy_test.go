package searcher

import (
	"math"
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(2.0, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(2.0, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(5.0, 10), policy.evaluate(5.0, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(10.0, 10), policy.evaluate(5.0, 10),
			"More rewards should increase exploitation term")
	})
}

func TestUCTPick(t *testing.T) {
	t.Run("picks the child with max value", func(t *testing.T) {
		children := []*decision{
			{rewards: 0, visits: 4},
			{rewards: 3, visits: 4},
			{rewards: -2, visits: 4},
		}

		require.Equal(t, 1, newUCT(CSquared, 12).pick(children))
	})

	t.Run("prefers the less visited child on equal means", func(t *testing.T) {
		children := []*decision{
			{rewards: 10, visits: 20},
			{rewards: 1, visits: 2},
		}

		require.Equal(t, 1, newUCT(CSquared, 22).pick(children))
	})
}

func TestVisitPolicy(t *testing.T) {
	t.Run("visit shares sum to one", func(t *testing.T) {
		children := []*decision{
			{move: game.PlaceMove(2, 4), visits: 3},
			{move: game.PlaceMove(3, 5), visits: 1},
		}

		got := visitPolicy(children)

		require.Equal(t, map[game.Move]float64{
			game.PlaceMove(2, 4): 0.75,
			game.PlaceMove(3, 5): 0.25,
		}, got)
	})

	t.Run("no children", func(t *testing.T) {
		require.Empty(t, visitPolicy(nil))
	})
}
