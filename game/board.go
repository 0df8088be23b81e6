package game

import "fmt"

type Color uint8

const (
	Black Color = iota + 1
	White
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func Opponent(c Color) Color {
	return c.Opponent()
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Disc returns the cell value holding a disc of color c.
func (c Color) Disc() Cell {
	return Cell(c)
}

// Symbols used for rendering and parsing boards
const (
	emptySymbol = '-'
	blackSymbol = 'k'
	whiteSymbol = 'w'
)

func (c Cell) Symbol() byte {
	switch c {
	case BlackDisc:
		return blackSymbol
	case WhiteDisc:
		return whiteSymbol
	default:
		return emptySymbol
	}
}

// Board is the 8x8 grid, indexed by [row][col]. Boards are values: assigning
// one copies every cell.
type Board [Size][Size]Cell

func (b *Board) Get(row, col int) Cell {
	mustBeInBounds(row, col)
	return b[row][col]
}

// Set writes a cell unconditionally. Legality is checked by the move generator.
func (b *Board) Set(row, col int, value Cell) {
	mustBeInBounds(row, col)
	b[row][col] = value
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.Get(row, col) == Empty
}

// Count returns how many cells hold value.
func (b *Board) Count(value Cell) int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] == value {
				n++
			}
		}
	}
	return n
}

func mustBeInBounds(row, col int) {
	if !InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col))
	}
}
