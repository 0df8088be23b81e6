package game

const Size = 8

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Color
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() (Outcome, bool)
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

// Context is the game a candidate position is scored in.
type Context struct {
	Current Position
	Rules   Rules
}

// Heuristic scores a candidate position for mover; higher is better for mover.
// Implementations may search below the candidate, level bounds how deep.
type Heuristic func(ctx *Context, candidate Position, level int, mover Color) float64
