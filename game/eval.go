package game

import "math"

// Positional weights: corners are stable, the cells next to them give them away.
var positionWeights = [Size][Size]float64{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

var corners = []Coord{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// EvaluateDiscs compares disc counts from the current player's perspective.
func EvaluateDiscs(s State) float64 {
	gs := mustGameState(s)
	if score, ok := terminalScore(gs); ok {
		return score
	}
	return gs.calculateDiscScore()
}

// EvaluateMobility compares how many moves each player has.
func EvaluateMobility(s State) float64 {
	gs := mustGameState(s)
	if score, ok := terminalScore(gs); ok {
		return score
	}
	return gs.calculateMobilityScore()
}

// EvaluateCorners compares the corners each player holds.
func EvaluateCorners(s State) float64 {
	gs := mustGameState(s)
	if score, ok := terminalScore(gs); ok {
		return score
	}
	return gs.calculateCornerScore()
}

// EvaluateWeighted sums the positional weight of each player's discs.
func EvaluateWeighted(s State) float64 {
	gs := mustGameState(s)
	if score, ok := terminalScore(gs); ok {
		return score
	}
	return gs.calculateWeightedScore()
}

// EvaluateCombined averages disc, mobility, corner and positional scores.
func EvaluateCombined(s State) float64 {
	gs := mustGameState(s)
	if score, ok := terminalScore(gs); ok {
		return score
	}
	discScore := gs.calculateDiscScore()
	mobilityScore := gs.calculateMobilityScore()
	cornerScore := gs.calculateCornerScore()
	weightedScore := gs.calculateWeightedScore()

	return (discScore + mobilityScore + cornerScore + weightedScore) / 4
}

// HeuristicFrom scores a candidate as evaluate would with mover to play.
func HeuristicFrom(evaluate Evaluate) Heuristic {
	return func(ctx *Context, candidate Position, level int, mover Color) float64 {
		var rules Rules = BoardFullRules{}
		if ctx != nil && ctx.Rules != nil {
			rules = ctx.Rules
		}
		return evaluate(&GameState{Position: candidate, CurrentPlayer: mover, Rules: rules})
	}
}

func mustGameState(s State) *GameState {
	switch gs := s.(type) {
	case *GameState:
		return gs
	case GameState:
		return &gs
	default:
		panic("unexpected state type")
	}
}

// terminalScore is 1 for a win, -1 for a loss and 0 for a draw.
func terminalScore(gs *GameState) (float64, bool) {
	outcome, over := gs.Winner()
	if !over {
		return 0, false
	}
	winner, ok := outcome.Winner()
	if !ok {
		return 0, true
	}
	if winner == gs.CurrentPlayer {
		return 1, true
	}
	return -1, true
}

func (gs *GameState) discsOf(c Color) float64 {
	return float64(gs.Position.board.Count(c.Disc()))
}

func (gs *GameState) calculateDiscScore() float64 {
	current := gs.CurrentPlayer
	return normalize(gs.discsOf(current), gs.discsOf(current.Opponent()))
}

func (gs *GameState) calculateMobilityScore() float64 {
	current := gs.CurrentPlayer
	mine := float64(len(LegalMoves(gs.Position, current)))
	theirs := float64(len(LegalMoves(gs.Position, current.Opponent())))
	return normalize(mine, theirs)
}

func (gs *GameState) calculateCornerScore() float64 {
	mine, theirs := 0.0, 0.0
	for _, c := range corners {
		switch gs.Position.board[c.Row][c.Col] {
		case gs.CurrentPlayer.Disc():
			mine++
		case gs.CurrentPlayer.Opponent().Disc():
			theirs++
		}
	}
	return normalize(mine, theirs)
}

func (gs *GameState) calculateWeightedScore() float64 {
	own := gs.CurrentPlayer.Disc()
	score, total := 0.0, 0.0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := gs.Position.board[row][col]
			if cell == Empty {
				continue
			}
			w := positionWeights[row][col]
			total += math.Abs(w)
			if cell == own {
				score += w
			} else {
				score -= w
			}
		}
	}
	if total == 0 {
		return 0
	}
	return score / total
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
