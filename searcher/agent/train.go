package agent

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
}

// NewTrainingAgent returns an agent for self-play that samples moves in
// proportion to their visits, sharpened or flattened by temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return trainingAgent{mcts: mcts, temperature: temperature}
}

func (a trainingAgent) FindMove(state *game.GameState, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	if len(policy) == 0 {
		return fallbackMove(state), metric
	}
	policy = adjustTemperature(policy, a.temperature)
	return sample(policy), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		return policy
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

func sample(policy map[game.Move]float64) game.Move {
	sampled := rand.Float64()
	cumulative := 0.0
	var lastMove game.Move
	for move, prob := range policy {
		lastMove = move
		cumulative += prob
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
