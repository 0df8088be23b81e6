package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 10 // Per match up
	TimeBudget = 10 * time.Millisecond
)

var evaluations = map[string]game.Evaluate{
	"discs":    game.EvaluateDiscs,
	"mobility": game.EvaluateMobility,
	"corners":  game.EvaluateCorners,
	"weighted": game.EvaluateWeighted,
	"combined": game.EvaluateCombined,
}

// Evaluation looks up an evaluation function by name, defaulting to discs.
func Evaluation(name string) (game.Evaluate, error) {
	if name == "" {
		return game.EvaluateDiscs, nil
	}
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
	return evaluate, nil
}

// RunLevelExperiment pairs greedy agents of increasing search level against
// the level 1 baseline.
func RunLevelExperiment(dir string) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.GreedyAgent, Level: 1, Evaluation: "weighted"}
	levelConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.GreedyAgent, Level: 1, Evaluation: "weighted"}, // Baseline equivalent
		{ID: 2, Kind: metrics.GreedyAgent, Level: 3, Evaluation: "weighted"},
		{ID: 3, Kind: metrics.GreedyAgent, Level: 5, Evaluation: "weighted"},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range levelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Run(dir, "level", append(levelConfigs, baseline), matchUps, NumGames)
}

// RunParallelizationExperiment pairs MCTS agents with more goroutines against
// a sequential one on the same time budget.
func RunParallelizationExperiment(dir string) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MCTSAgent, Goroutines: 1, Duration: TimeBudget, Evaluation: "discs"}
	parallelConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MCTSAgent, Goroutines: 2, Duration: TimeBudget, Evaluation: "discs"},
		{ID: 2, Kind: metrics.MCTSAgent, Goroutines: 4, Duration: TimeBudget, Evaluation: "discs"},
		{ID: 3, Kind: metrics.MCTSAgent, Goroutines: 8, Duration: TimeBudget, Evaluation: "discs"},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Run(dir, "parallelization", append(parallelConfigs, baseline), matchUps, NumGames)
}

// Run plays games for every match up, the first agent playing black, and
// writes agent configs, game records and move records under dir/name.
func Run(dir, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(config1, config2)
			if err != nil {
				return err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored experiment records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, err := NewAgent(config1)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	white, err := NewAgent(config2)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e := engine.NewLocalEngine(black, white, engine.WithRules(game.NoMovesRules{}))

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// NewAgent builds the agent described by config.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	evaluate, err := Evaluation(config.Evaluation)
	if err != nil {
		return nil, err
	}

	switch config.Kind {
	case metrics.GreedyAgent, "":
		collector := metrics.NewCollector()
		negamax := searcher.NewNegamax(
			searcher.WithNegamaxEvaluationFn(evaluate),
			searcher.WithNegamaxMetrics(collector),
		)
		level := config.Level
		if level < 1 {
			level = 1
		}
		return agent.NewGreedyAgent(negamax.Heuristic(), level, collector), nil
	case metrics.MCTSAgent:
		return agent.NewEvaluationAgent(createMCTS(config, evaluate)), nil
	case metrics.RandomAgent:
		return agent.NewRandomAgent(), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createMCTS(config metrics.AgentConfig, evaluate game.Evaluate) *searcher.MCTS {
	options := []searcher.Option{searcher.WithEvaluationFn(evaluate)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(TimeBudget))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
