package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// Segment is one move played since the previous search, with the hash of the
// state it led to.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	root       *decision
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines < 1 {
		goroutines = 1
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     DefaultCutoff,
		evaluate:   game.EvaluateDiscs,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from state and returns the visit share of each root move.
// lineage lists the moves played since the previous call; the subtree they
// lead to is reused when it matches state.
func (m *MCTS) Simulate(state game.State, lineage []Segment) (map[game.Move]float64, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.cutoff, 0)
	m.findRoot(lineage, state)

	// Run simulations to collect statistics
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}
	metric := m.metrics.Complete()

	return m.root.Policy(), metric
}

func (m *MCTS) iterate(state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(state game.State) {
	deadline := time.Now().Add(m.duration)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for time.Now().Before(deadline) {
				m.simulate(state)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) findRoot(path []Segment, state game.State) {
	root := traverse(m.root, path)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, game.Move{}, state.Player().Opponent(), state)
		m.metrics.SetTreeReset(true)
		return
	}
	root.Lock()
	root.parent = nil
	root.Unlock()
	m.root = root
	m.metrics.SetTreeReset(false)
}

func traverse(root *decision, path []Segment) *decision {
	if root == nil || len(path) == 0 {
		return nil
	}

	node := root
	for _, segment := range path {
		child := node.child(segment.Move)
		if child == nil { // Node has not expanded this move
			return nil
		}
		if child.hash != segment.StateHash {
			log.Warn().Msgf("node's state hash %d does not match segment's state hash %d", child.hash, segment.StateHash)
			return nil
		}
		node = child
	}
	return node
}

func (m *MCTS) simulate(state game.State) {
	newNode, newState := selectThenExpand(m.root, state)
	player, score := rollout(newState, m.cutoff, m.evaluate, m.metrics)
	backup(newNode, player, score)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	child, state, selected := root.SelectOrExpand(state)
	for selected {
		child, state, selected = child.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves and returns a score from the perspective of the
// returned player.
func rollout(state game.State, cutoff int, evaluate game.Evaluate, metrics metrics.Collector) (game.Color, float64) {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && depth < cutoff {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if outcome, over := state.Winner(); over { // Game over before cutoff
		metrics.AddFullPlayout()
		return state.Player(), outcomeScore(outcome, state.Player())
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

func backup(newNode *decision, player game.Color, score float64) {
	node := newNode
	for node != nil {
		node = node.Backup(player, score)
	}
}
