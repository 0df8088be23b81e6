package game

type Outcome int

const (
	BlackWins Outcome = iota + 1
	WhiteWins
	Draw
)

func OutcomeFor(winner Color) Outcome {
	if winner == Black {
		return BlackWins
	}
	return WhiteWins
}

// Winner returns the winning color, false on a draw.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case BlackWins:
		return Black, true
	case WhiteWins:
		return White, true
	default:
		return 0, false
	}
}

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black"
	case WhiteWins:
		return "white"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

func outcomeOf(black, white int) Outcome {
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Draw
	}
}
