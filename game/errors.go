package game

import "errors"

var (
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrIllegalMove    = errors.New("illegal move")
	ErrMalformedBoard = errors.New("malformed board")
)
