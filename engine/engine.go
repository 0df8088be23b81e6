package engine

import "othello/experiments/metrics"

// MaxTurns ends games that stall, e.g. both players passing on a board that
// is not full.
const MaxTurns = 200

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
