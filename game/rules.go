package game

// Rules decides when a game is over.
type Rules interface {
	IsOver(gs GameState) (Outcome, bool)
}

// BoardFullRules ends the game only once every cell holds a disc.
type BoardFullRules struct{}

func (BoardFullRules) IsOver(gs GameState) (Outcome, bool) {
	return gs.Position.IsFinal()
}

// NoMovesRules also ends the game as soon as both players have passed in a
// row, scoring the discs on the board.
type NoMovesRules struct{}

func (NoMovesRules) IsOver(gs GameState) (Outcome, bool) {
	if outcome, ok := gs.Position.IsFinal(); ok {
		return outcome, true
	}
	if gs.Passes >= 2 {
		black, white := gs.Position.Discs()
		return outcomeOf(black, white), true
	}
	return 0, false
}
