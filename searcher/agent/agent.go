package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(state *game.GameState, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}

// fallbackMove returns the first legal move, used when a search has no opinion.
func fallbackMove(state *game.GameState) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves at all")
	}
	return moves[0]
}
