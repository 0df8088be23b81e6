package experiments

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
)

const ThroughputTrials = 5 // Searches per config

// RunThroughputExperiment measures how many episodes MCTS completes from the
// opening position in a fixed time as the number of goroutines grows.
func RunThroughputExperiment(dir string) error {
	const Duration = 10 * time.Millisecond
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MCTSAgent, Goroutines: 1, Duration: Duration, Evaluation: "discs"},
		{ID: 2, Kind: metrics.MCTSAgent, Goroutines: 2, Duration: Duration, Evaluation: "discs"},
		{ID: 3, Kind: metrics.MCTSAgent, Goroutines: 4, Duration: Duration, Evaluation: "discs"},
		{ID: 4, Kind: metrics.MCTSAgent, Goroutines: 8, Duration: Duration, Evaluation: "discs"},
		{ID: 5, Kind: metrics.MCTSAgent, Goroutines: 16, Duration: Duration, Evaluation: "discs"},
		{ID: 6, Kind: metrics.MCTSAgent, Goroutines: 32, Duration: Duration, Evaluation: "discs"},
	}
	return Throughput(dir, configs, ThroughputTrials)
}

// Throughput runs trials searches per config from a fresh tree each time and
// stores one move record per search, keyed by the config ID.
func Throughput(dir string, configs []metrics.AgentConfig, trials int) error {
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting throughput experiment...")

	for _, config := range configs {
		evaluate, err := Evaluation(config.Evaluation)
		if err != nil {
			return err
		}

		total := 0
		for i := 0; i < trials; i++ {
			// New searcher per trial so no tree is reused
			mcts := createMCTS(config, evaluate)
			state := game.NewGameState(game.NoMovesRules{})
			policy, searchMetric := mcts.Simulate(state, nil)
			total += searchMetric.Episodes

			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game: config.ID,
				MoveMetric: metrics.MoveMetric{
					Step:         i + 1,
					Player:       state.CurrentPlayer,
					Move:         mostVisited(policy),
					SearchMetric: searchMetric,
				},
			})
		}
		log.Info().Msgf("goroutines=%d completed %.1f episodes per search", config.Goroutines, float64(total)/float64(max(trials, 1)))
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(dir, "throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored experiment records in %s", writer.Dir())
	return nil
}

func mostVisited(policy map[game.Move]float64) game.Move {
	best, bestShare := game.PassMove(), -1.0
	for move, share := range policy {
		if share > bestShare {
			best, bestShare = move, share
		}
	}
	return best
}
