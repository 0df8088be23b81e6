package metrics

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent episodes", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 10, 3)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					c.AddEpisode()
					c.AddNode()
				}
				c.AddFullPlayout()
			}()
		}
		wg.Wait()
		c.SetTreeReset(true)

		got := c.Complete()
		require.Equal(t, 100, got.Episodes)
		require.Equal(t, 100, got.Nodes)
		require.Equal(t, 4, got.FullPlayouts)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 10, got.Cutoff)
		require.Equal(t, 3, got.Level)
		require.True(t, got.IsTreeReset)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 0, 0)
		c.AddEpisode()
		c.Start(1, 0, 0)
		require.Equal(t, 0, c.Complete().Episodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 1, 1)
		c.AddEpisode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: GreedyAgent, Level: 3, Evaluation: "discs"}})
	require.NoError(t, err)
	err = w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: game.Black, Winner: "black"}}})
	require.NoError(t, err)
	err = w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Black, Move: game.PlaceMove(2, 4)}}})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2, "Header plus one record")
	require.Equal(t, []string{"1", "1", "black", "(2, 4)", "0s", "0", "0", "0", "false"}, rows[1])
}

func TestTranscript(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTranscript(&buf)

	require.NoError(t, tr.WriteMove(game.Black, game.PlaceMove(2, 4), game.NewInitialPosition()))
	require.NoError(t, tr.WriteResult("draw", time.Second))
	require.NoError(t, tr.Close())

	require.Contains(t, buf.String(), "MOVE: player black (2, 4) = \n")
	require.Contains(t, buf.String(), "- - - k w - - -")
	require.Contains(t, buf.String(), "The winner is player: draw\nElapsed time: 1s\n")
}
