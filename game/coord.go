package game

import (
	"fmt"
	"sort"
)

type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coord]struct{}

func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Len() int {
	return len(s)
}

// Union adds every member of other to s.
func (s CoordSet) Union(other CoordSet) CoordSet {
	for c := range other {
		s[c] = struct{}{}
	}
	return s
}

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coord {
	coords := make([]Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
