package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Position is one complete snapshot of the board. It owns its board by value,
// so copies never alias and two positions compare equal with == exactly when
// every cell matches.
type Position struct {
	board Board
}

func NewInitialPosition() Position {
	var p Position
	p.board.Set(3, 3, BlackDisc)
	p.board.Set(3, 4, WhiteDisc)
	p.board.Set(4, 3, WhiteDisc)
	p.board.Set(4, 4, BlackDisc)
	return p
}

func NewPosition(board Board) Position {
	return Position{board: board}
}

// ParsePosition reads eight rows of '-', 'k' and 'w'. Whitespace inside a row
// is ignored.
func ParsePosition(s string) (Position, error) {
	var p Position
	rows := strings.Split(strings.TrimSpace(s), "\n")
	if len(rows) != Size {
		return p, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, Size, len(rows))
	}
	for row, line := range rows {
		line = strings.Join(strings.Fields(line), "")
		if len(line) != Size {
			return p, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, row, len(line))
		}
		for col := 0; col < Size; col++ {
			switch line[col] {
			case emptySymbol:
			case blackSymbol:
				p.board.Set(row, col, BlackDisc)
			case whiteSymbol:
				p.board.Set(row, col, WhiteDisc)
			default:
				return p, fmt.Errorf("%w: unknown symbol %q at (%d, %d)", ErrMalformedBoard, line[col], row, col)
			}
		}
	}
	return p, nil
}

// Board returns a copy of the position's board.
func (p Position) Board() Board {
	return p.board
}

func (p Position) Get(row, col int) Cell {
	return p.board.Get(row, col)
}

func (p Position) IsEmpty(row, col int) bool {
	return p.board.IsEmpty(row, col)
}

func (p Position) Equal(other Position) bool {
	return p.board == other.board
}

func (p Position) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, p.board)
	return StateHash(hasher.Sum64())
}

// Discs returns the number of black and white discs on the board.
func (p Position) Discs() (black, white int) {
	return p.board.Count(BlackDisc), p.board.Count(WhiteDisc)
}

func (p Position) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(p.board[row][col].Symbol())
		}
		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// AffectedDiscs returns the enemy discs flipped if mover places a disc at
// (row, col). The set is empty when the cell is occupied or the move captures
// nothing, i.e. exactly when the move is illegal.
func (p Position) AffectedDiscs(row, col int, mover Color) CoordSet {
	affected := CoordSet{}
	if !p.board.IsEmpty(row, col) {
		return affected
	}
	affected.Union(p.axisCaptures(row, col, 0, 1, mover))  // row
	affected.Union(p.axisCaptures(row, col, 1, 0, mover))  // column
	affected.Union(p.axisCaptures(row, col, 1, 1, mover))  // top-left to bottom-right
	affected.Union(p.axisCaptures(row, col, 1, -1, mover)) // top-right to bottom-left
	return affected
}

func (p Position) IsLegal(row, col int, mover Color) bool {
	return len(p.AffectedDiscs(row, col, mover)) > 0
}

// axisCaptures scans both directions of the axis (dr, dc).
func (p Position) axisCaptures(row, col, dr, dc int, mover Color) CoordSet {
	captures := p.directionCaptures(row, col, dr, dc, mover)
	return captures.Union(p.directionCaptures(row, col, -dr, -dc, mover))
}

func (p Position) directionCaptures(row, col, dr, dc int, mover Color) CoordSet {
	captures := CoordSet{}
	anchor, ok := p.findAnchor(row, col, dr, dc, mover)
	if !ok {
		return captures
	}

	enemy := mover.Opponent().Disc()
	for r, c := row+dr, col+dc; r != anchor.Row || c != anchor.Col; r, c = r+dr, c+dc {
		switch p.board[r][c] {
		case enemy:
			captures.Add(Coord{Row: r, Col: c})
		case Empty:
			// A gap breaks the run
			return CoordSet{}
		}
	}
	return captures
}

// findAnchor returns the nearest disc of mover's color from (row, col) in
// direction (dr, dc), not counting the starting cell.
func (p Position) findAnchor(row, col, dr, dc int, mover Color) (Coord, bool) {
	own := mover.Disc()
	for r, c := row+dr, col+dc; InBounds(r, c); r, c = r+dr, c+dc {
		if p.board[r][c] == own {
			return Coord{Row: r, Col: c}, true
		}
	}
	return Coord{}, false
}

// IsFinal reports whether the board is full and, if so, who won by disc count.
func (p Position) IsFinal() (Outcome, bool) {
	if p.board.Count(Empty) > 0 {
		return 0, false
	}
	black, white := p.Discs()
	return outcomeOf(black, white), true
}
