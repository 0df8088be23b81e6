package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// WithTranscript records every move played.
func WithTranscript(t *metrics.Transcript) Option {
	return func(e *LocalEngine) {
		e.transcript = t
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *LocalEngine) {
		if rules != nil {
			e.State.Rules = rules
		}
	}
}

// LocalEngine plays black against white in process, black moving first.
type LocalEngine struct {
	State      *game.GameState
	Agents     [2]agent.Agent // Black, White
	transcript *metrics.Transcript
	maxTurns   int
}

func NewLocalEngine(black, white agent.Agent, options ...Option) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	e := &LocalEngine{
		State:    game.NewGameState(game.BoardFullRules{}),
		Agents:   [2]agent.Agent{black, white},
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func agentIndex(c game.Color) int {
	if c == game.Black {
		return 0
	}
	return 1
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	// Moves each agent has not seen yet
	updates := make([][]searcher.Segment, len(e.Agents))

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("starting player: %s, initial board:\n%s", e.State.CurrentPlayer, e.State.Position)

	var moveMetrics []metrics.MoveMetric
	turnCount := 1
	_, over := e.State.Winner()
	for !over && turnCount <= e.maxTurns {
		player := e.State.CurrentPlayer
		i := agentIndex(player)

		move, searchMetric := e.Agents[i].FindMove(e.State, updates[i])
		updates[i] = nil
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		e.State = e.State.Play(move).(*game.GameState)

		segment := searcher.Segment{Move: move, StateHash: e.State.Hash()}
		for j := range updates {
			updates[j] = append(updates[j], segment)
		}

		log.Info().Msgf("MOVE: player %s = %s\n%s", player, move, e.State.Position)
		if e.transcript != nil {
			if err := e.transcript.WriteMove(player, move, e.State.Position); err != nil {
				log.Error().Err(err).Msg("failed to record move")
			}
		}

		turnCount++
		_, over = e.State.Winner()
	}

	winner := ""
	if outcome, ok := e.State.Winner(); ok {
		winner = outcome.String()
		log.Info().Msgf("the winner is player: %s", winner)
	} else {
		log.Warn().Msgf("stopped after %d turns without a winner", e.maxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.BlackDiscs, gameMetric.WhiteDiscs = e.State.Position.Discs()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if e.transcript != nil {
		if err := e.transcript.WriteResult(winner, gameMetric.Duration); err != nil {
			log.Error().Err(err).Msg("failed to record result")
		}
	}
	log.Info().Msgf("elapsed time: %s", gameMetric.Duration)

	return winner, gameMetric, moveMetrics
}
