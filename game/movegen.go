package game

import (
	"fmt"
	"sync"
)

// PositionSet is a set of positions deduplicated by board contents.
type PositionSet map[Position]struct{}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

type ResultKind int

const (
	HasMoves ResultKind = iota
	MustPass
	NoLegalMoves
)

func (k ResultKind) String() string {
	switch k {
	case HasMoves:
		return "has moves"
	case MustPass:
		return "must pass"
	case NoLegalMoves:
		return "no legal moves"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// MoveResult is what the mover can do from a position. Successors is only set
// when Kind is HasMoves and never contains the parent position.
type MoveResult struct {
	Kind       ResultKind
	Successors PositionSet
}

// Successors returns every position reachable by one legal move of mover,
// plus the input position itself.
func Successors(pos Position, mover Color) PositionSet {
	out := PositionSet{pos: {}}
	for row := 0; row < Size; row++ {
		addRowSuccessors(out, pos, row, mover)
	}
	return out
}

// ParallelSuccessors is Successors with rows spread over workers goroutines.
// Workers only read pos, and each successor owns a fresh board.
func ParallelSuccessors(pos Position, mover Color, workers int) PositionSet {
	if workers < 1 {
		workers = 1
	}
	rows := make(chan int, Size)
	for row := 0; row < Size; row++ {
		rows <- row
	}
	close(rows)

	results := make([]PositionSet, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = PositionSet{}
			for row := range rows {
				addRowSuccessors(results[i], pos, row, mover)
			}
		}(i)
	}
	wg.Wait()

	out := PositionSet{pos: {}}
	for _, set := range results {
		for p := range set {
			out.Add(p)
		}
	}
	return out
}

func addRowSuccessors(out PositionSet, pos Position, row int, mover Color) {
	for col := 0; col < Size; col++ {
		if !pos.IsEmpty(row, col) {
			continue
		}
		affected := pos.AffectedDiscs(row, col, mover)
		if len(affected) > 0 {
			out.Add(Apply(pos, Coord{Row: row, Col: col}, mover, affected))
		}
	}
}

// Generate is the tagged form of Successors: the parent position is never a
// member, and a pass is reported only when mover has no capture at all.
func Generate(pos Position, mover Color) MoveResult {
	successors := PositionSet{}
	for row := 0; row < Size; row++ {
		addRowSuccessors(successors, pos, row, mover)
	}
	if len(successors) > 0 {
		return MoveResult{Kind: HasMoves, Successors: successors}
	}
	if HasLegalMove(pos, mover.Opponent()) {
		return MoveResult{Kind: MustPass}
	}
	return MoveResult{Kind: NoLegalMoves}
}

// LegalMoves returns the cells mover can play, in row-major order.
func LegalMoves(pos Position, mover Color) []Coord {
	var moves []Coord
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if pos.IsLegal(row, col, mover) {
				moves = append(moves, Coord{Row: row, Col: col})
			}
		}
	}
	return moves
}

func HasLegalMove(pos Position, mover Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if pos.IsLegal(row, col, mover) {
				return true
			}
		}
	}
	return false
}

// Apply returns a copy of pos with mover's disc at target and every captured
// disc flipped. pos itself is left untouched.
func Apply(pos Position, target Coord, mover Color, captured CoordSet) Position {
	out := pos
	disc := mover.Disc()
	out.board.Set(target.Row, target.Col, disc)
	for c := range captured {
		out.board.Set(c.Row, c.Col, disc)
	}
	return out
}

// Play places mover's disc at target, failing if the move captures nothing.
func Play(pos Position, target Coord, mover Color) (Position, error) {
	affected := pos.AffectedDiscs(target.Row, target.Col, mover)
	if len(affected) == 0 {
		return pos, fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, mover, target)
	}
	return Apply(pos, target, mover, affected), nil
}
