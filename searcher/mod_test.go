package searcher

import "othello/game"

type mockState struct {
	player game.Color
	moves  []game.Move
	played []game.Move
	hash   game.StateHash
}

func (m mockState) Player() game.Color {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	played := append(append([]game.Move{}, m.played...), move)
	return mockState{player: m.player.Opponent(), played: played}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() (game.Outcome, bool) {
	return 0, len(m.moves) == 0
}
