package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"sort"

	"github.com/rs/zerolog/log"
)

// SelfPenalty is the score given to the unchanged position among the
// successors, so that a player does not get stuck standing still.
const SelfPenalty = -1000.0

// minScore is below every score a candidate can get.
const minScore = -9999.0

type candidate struct {
	move     game.Move
	position game.Position
}

type greedyAgent struct {
	heuristic game.Heuristic
	level     int
	metrics   metrics.Collector
}

// NewGreedyAgent returns an agent that scores every successor with heuristic
// searched to level and plays the best one.
func NewGreedyAgent(heuristic game.Heuristic, level int, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return greedyAgent{heuristic: heuristic, level: level, metrics: collector}
}

func (a greedyAgent) FindMove(state *game.GameState, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	a.metrics.Start(1, 0, a.level)

	current := state.Position
	player := state.CurrentPlayer
	ctx := &game.Context{Current: current, Rules: state.Rules}

	best := candidate{move: game.PassMove(), position: current}
	bestScore := minScore
	for _, c := range candidates(current, player) {
		var h float64
		if c.position == current {
			h = SelfPenalty
		} else {
			h = a.heuristic(ctx, c.position, a.level, player)
		}
		log.Debug().Msgf("possible move %s for player %s: heuristic = %f", c.move, player, h)
		if h > bestScore {
			bestScore = h
			best = c
		}
	}

	if best.move.Pass && game.HasLegalMove(current, player) {
		log.Warn().Msgf("player %s preferred standing still with moves available, playing %s", player, fallbackMove(state))
		return fallbackMove(state), a.metrics.Complete()
	}
	return best.move, a.metrics.Complete()
}

// candidates lists the members of game.Successors with the move that leads to
// each: the unchanged position first, then placements in row-major order.
func candidates(current game.Position, player game.Color) []candidate {
	out := []candidate{}
	for p := range game.Successors(current, player) {
		out = append(out, candidate{move: moveBetween(current, p), position: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].move.Pass != out[j].move.Pass {
			return out[i].move.Pass
		}
		return less(out[i].move, out[j].move)
	})
	return out
}

// moveBetween finds the cell that was empty in parent and is filled in child.
func moveBetween(parent, child game.Position) game.Move {
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			if parent.IsEmpty(row, col) && !child.IsEmpty(row, col) {
				return game.PlaceMove(row, col)
			}
		}
	}
	return game.PassMove()
}
