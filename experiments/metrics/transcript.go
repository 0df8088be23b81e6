package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"othello/game"
)

// Transcript records every position of a game as it is played.
type Transcript struct {
	w      io.Writer
	closer io.Closer
}

func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

// CreateTranscript opens othello_<timestamp>.txt in dir.
func CreateTranscript(dir string) (*Transcript, string, error) {
	name := fmt.Sprintf("othello_%s.txt", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create transcript: %w", err)
	}
	return &Transcript{w: f, closer: f}, path, nil
}

func (t *Transcript) WriteMove(player game.Color, move game.Move, pos game.Position) error {
	_, err := fmt.Fprintf(t.w, "MOVE: player %s %s = \n%s\n\n", player, move, pos)
	if err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}
	return nil
}

func (t *Transcript) WriteResult(winner string, elapsed time.Duration) error {
	_, err := fmt.Fprintf(t.w, "The winner is player: %s\nElapsed time: %s\n", winner, elapsed)
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func (t *Transcript) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
