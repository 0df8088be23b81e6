package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct{}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent() Agent {
	return randomAgent{}
}

func (randomAgent) FindMove(state *game.GameState, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves at all")
	}
	return moves[rand.Intn(len(moves))], metrics.SearchMetric{}
}
