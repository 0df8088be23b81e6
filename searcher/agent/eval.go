package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state *game.GameState, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	if len(policy) == 0 {
		return fallbackMove(state), metric
	}
	return findMax(policy), metric
}

// findMax returns the most visited move, breaking ties in row-major order.
func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit || (visit == maxVisit && less(move, maxMove)) {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}

func less(a, b game.Move) bool {
	if a.Pass != b.Pass {
		return b.Pass
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
