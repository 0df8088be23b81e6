package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is a position together with whose turn it is. It is never
// modified in place: Play returns a new state.
type GameState struct {
	Position      Position
	CurrentPlayer Color
	Passes        int   // Consecutive passes leading to this state
	LastMove      *Move // nil before the first move
	Rules         Rules
}

// NewGameState returns the opening position with Black to move.
func NewGameState(rules Rules) *GameState {
	if rules == nil {
		rules = BoardFullRules{}
	}
	return &GameState{
		Position:      NewInitialPosition(),
		CurrentPlayer: Black,
		Rules:         rules,
	}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

func (gs GameState) Player() Color {
	return gs.CurrentPlayer
}

func (gs GameState) Winner() (Outcome, bool) {
	if gs.Rules == nil {
		return BoardFullRules{}.IsOver(gs)
	}
	return gs.Rules.IsOver(gs)
}

// LegalMoves returns the current player's placements in row-major order, a
// single pass if there are none, or nothing once the game is over.
func (gs GameState) LegalMoves() []Move {
	if _, over := gs.Winner(); over {
		return nil
	}
	coords := LegalMoves(gs.Position, gs.CurrentPlayer)
	if len(coords) == 0 {
		return []Move{PassMove()}
	}
	moves := make([]Move, len(coords))
	for i, c := range coords {
		moves[i] = Move{Coord: c}
	}
	return moves
}

func (gs GameState) Play(move Move) State {
	newGs := gs.Copy()
	newGs.LastMove = &move
	newGs.CurrentPlayer = gs.CurrentPlayer.Opponent()

	if move.Pass {
		if HasLegalMove(gs.Position, gs.CurrentPlayer) {
			panic(fmt.Errorf("%w: %s cannot pass with moves available", ErrIllegalMove, gs.CurrentPlayer))
		}
		newGs.Passes = gs.Passes + 1
		return newGs
	}

	pos, err := Play(gs.Position, move.Coord, gs.CurrentPlayer)
	if err != nil {
		panic(err)
	}
	newGs.Position = pos
	newGs.Passes = 0
	return newGs
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash board
	binary.Write(hasher, binary.LittleEndian, gs.Position.board)

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))

	// Hash passes
	binary.Write(hasher, binary.LittleEndian, int64(gs.Passes))

	return StateHash(hasher.Sum64())
}
