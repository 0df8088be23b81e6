// meta/meta.go
package meta

// LEVEL is the default search level of the greedy agent. Odd levels end on
// the mover's own reply.
const LEVEL = 3

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 500

// WITH_CUTOFF defines the rollout cutoff for MCTS.
const WITH_CUTOFF = 20

// MAX_TURNS caps the number of moves in one game.
const MAX_TURNS = 200
