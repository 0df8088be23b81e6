package gamemaster

import (
	"errors"
	"fmt"
	"othello/game"
	"slices"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type UpdateGetter func() (*game.Move, *game.GameState)

type update struct {
	move  game.Move
	state *game.GameState
}

// LocalMaster referees a game for callers that submit moves one at a time,
// rejecting anything illegal.
type LocalMaster struct {
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalMaster() *LocalMaster {
	return &LocalMaster{}
}

// Init starts a new game under rules and returns its state and a getter for
// the moves played since. The getter returns nil when there is no update.
func (e *LocalMaster) Init(rules game.Rules) (*game.GameState, UpdateGetter) {
	e.state = game.NewGameState(rules)
	e.gameOver = false
	e.updateCh = make(chan update, 1)

	updateCh := e.updateCh
	return e.state.Copy(), func() (*game.Move, *game.GameState) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return nil, nil
			}
			return &u.move, u.state.Copy()
		default:
			// No updates yet, return nil immediately
			return nil, nil
		}
	}
}

func (e *LocalMaster) State() *game.GameState {
	return e.state.Copy()
}

func (e *LocalMaster) Play(move game.Move) error {
	if e.state == nil {
		return fmt.Errorf("game not initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}

	if !slices.Contains(e.state.LegalMoves(), move) {
		return fmt.Errorf("%w: %s cannot play %s", game.ErrIllegalMove, e.state.CurrentPlayer, move)
	}

	e.state = e.state.Play(move).(*game.GameState)

	// Drop an unread update so the latest one is always delivered
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- update{move: move, state: e.state}

	if _, over := e.state.Winner(); over {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}
