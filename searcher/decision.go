package searcher

import (
	"othello/game"
	"sync"

	"golang.org/x/exp/rand"
)

// decision is a tree node for the state reached by playing move. Its rewards
// are kept from the perspective of mover, the player who played move.
type decision struct {
	sync.RWMutex
	parent     *decision
	move       game.Move
	mover      game.Color
	hash       game.StateHash
	unexplored []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, move game.Move, mover game.Color, state game.State) *decision {
	moves := state.LegalMoves()
	unexplored := make([]game.Move, len(moves))
	copy(unexplored, moves)
	rand.Shuffle(len(unexplored), func(i, j int) {
		unexplored[i], unexplored[j] = unexplored[j], unexplored[i]
	})

	return &decision{
		parent:     parent,
		move:       move,
		mover:      mover,
		hash:       state.Hash(),
		unexplored: unexplored,
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level from d. It returns the child and its state
// with selected set when an explored child was picked, a freshly added child
// when d still had unexplored moves, or d itself when d is terminal.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[len(d.unexplored)-1]
		d.unexplored = d.unexplored[:len(d.unexplored)-1]
		childState := state.Play(move)
		child := newDecision(d, move, state.Player(), childState)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	child := d.children[newUCT(CSquared, d.visitsLocked()).pick(d.children)]
	child.applyLoss()
	return child, state.Play(child.move), true
}

// visitsLocked sums the children's visits, which include in-flight virtual
// losses, so that the parent count is never behind its children.
func (d *decision) visitsLocked() float64 {
	total := 0.0
	for _, child := range d.children {
		_, visits := child.stats()
		total += visits
	}
	return total
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) stats() (rewards float64, visits float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

// Backup records score, given from player's perspective, and returns the parent.
func (d *decision) Backup(player game.Color, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.mover)
	d.visits++

	return d.parent
}

func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	return visitPolicy(d.children)
}

func (d *decision) child(move game.Move) *decision {
	d.RLock()
	defer d.RUnlock()

	for _, child := range d.children {
		if child.move == move {
			return child
		}
	}
	return nil
}
