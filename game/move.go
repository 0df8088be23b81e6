package game

// Move places a disc at Coord, or passes the turn when Pass is set.
type Move struct {
	Coord
	Pass bool
}

func PassMove() Move {
	return Move{Pass: true}
}

func PlaceMove(row, col int) Move {
	return Move{Coord: Coord{Row: row, Col: col}}
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Coord.String()
}
