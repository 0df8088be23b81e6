package searcher

import (
	"math"
	"othello/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome, also the virtual loss
const Tie = 0.0

// DefaultCutoff bounds rollouts, including pass-only cycles on a stuck board
const DefaultCutoff = 2 * game.Size * game.Size

// computeReward converts score, given from player's perspective, to mover's.
func computeReward(player game.Color, score float64, mover game.Color) float64 {
	if player == mover {
		return score
	}
	return -score
}

// outcomeScore scores a finished game from the perspective of toMove.
func outcomeScore(outcome game.Outcome, toMove game.Color) float64 {
	winner, ok := outcome.Winner()
	if !ok {
		return Tie
	}
	if winner == toMove {
		return Win
	}
	return Loss
}

var negInf = math.Inf(-1)
