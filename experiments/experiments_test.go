package experiments

import (
	"os"
	"othello/experiments/metrics"
	"othello/game"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluation(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for name := range evaluations {
			evaluate, err := Evaluation(name)
			require.NoError(t, err)
			require.NotNil(t, evaluate)
		}
	})

	t.Run("empty name defaults", func(t *testing.T) {
		evaluate, err := Evaluation("")
		require.NoError(t, err)
		require.Equal(t, 0.0, evaluate(game.NewGameState(nil)))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Evaluation("material")
		require.Error(t, err)
	})
}

func TestNewAgent(t *testing.T) {
	for _, config := range []metrics.AgentConfig{
		{Kind: metrics.GreedyAgent, Level: 2, Evaluation: "mobility"},
		{Kind: metrics.MCTSAgent, Goroutines: 2, Episodes: 20, Cutoff: 4},
		{Kind: metrics.RandomAgent},
	} {
		a, err := NewAgent(config)
		require.NoError(t, err)

		state := game.NewGameState(nil)
		move, _ := a.FindMove(state, nil)
		require.Contains(t, state.LegalMoves(), move, "Agent %s should play a legal move", config.Kind)
	}

	_, err := NewAgent(metrics.AgentConfig{Kind: "alphabeta"})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	random := metrics.AgentConfig{ID: 1, Kind: metrics.RandomAgent}
	greedy := metrics.AgentConfig{ID: 2, Kind: metrics.GreedyAgent, Level: 1}

	err := Run(dir, "smoke", []metrics.AgentConfig{random, greedy}, [][]metrics.AgentConfig{{random, greedy}}, 2)
	require.NoError(t, err)

	runs, err := os.ReadDir(filepath.Join(dir, "smoke"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, "smoke", runs[0].Name(), name))
	}
}

func TestThroughput(t *testing.T) {
	dir := t.TempDir()
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MCTSAgent, Goroutines: 1, Episodes: 30},
		{ID: 2, Kind: metrics.MCTSAgent, Goroutines: 4, Episodes: 30},
	}

	err := Throughput(dir, configs, 2)
	require.NoError(t, err)

	runs, err := os.ReadDir(filepath.Join(dir, "throughput"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.FileExists(t, filepath.Join(dir, "throughput", runs[0].Name(), "move_records.csv"))
	require.NoFileExists(t, filepath.Join(dir, "throughput", runs[0].Name(), "game_records.csv"))
}

func TestMostVisited(t *testing.T) {
	policy := map[game.Move]float64{
		game.PlaceMove(2, 4): 0.2,
		game.PlaceMove(3, 5): 0.7,
		game.PlaceMove(4, 2): 0.1,
	}
	require.Equal(t, game.PlaceMove(3, 5), mostVisited(policy))
	require.Equal(t, game.PassMove(), mostVisited(nil))
}
