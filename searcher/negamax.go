package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

type NegamaxOption func(n *Negamax)

// Negamax is a depth-limited alpha-beta search scoring positions with an
// evaluation function at its leaves.
type Negamax struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithNegamaxEvaluationFn(evaluate game.Evaluate) NegamaxOption {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

func WithNegamaxMetrics(collector metrics.Collector) NegamaxOption {
	return func(n *Negamax) {
		if collector != nil {
			n.metrics = collector
		}
	}
}

func NewNegamax(options ...NegamaxOption) *Negamax {
	n := &Negamax{
		evaluate: game.EvaluateDiscs,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// Score implements game.Heuristic. candidate is the position after mover's
// move; level 1 evaluates it directly, every further level searches one more
// ply below it.
func (n *Negamax) Score(ctx *game.Context, candidate game.Position, level int, mover game.Color) float64 {
	var rules game.Rules = game.BoardFullRules{}
	if ctx != nil && ctx.Rules != nil {
		rules = ctx.Rules
	}
	state := &game.GameState{Position: candidate, CurrentPlayer: mover.Opponent(), Rules: rules}
	return -n.search(state, level-1, negInf, -negInf)
}

func (n *Negamax) Heuristic() game.Heuristic {
	return n.Score
}

// search returns the value of state for the player to move.
func (n *Negamax) search(state game.State, depth int, alpha, beta float64) float64 {
	n.metrics.AddNode()

	moves := state.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return n.evaluate(state)
	}

	best := negInf
	for _, move := range moves {
		value := -n.search(state.Play(move), depth-1, -beta, -alpha)
		if value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
