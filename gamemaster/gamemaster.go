package gamemaster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseMove reads "row col" (0-based) or "pass".
func ParseMove(s string) (game.Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 1 && strings.EqualFold(fields[0], "pass") {
		return game.PassMove(), nil
	}
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected \"row col\" or \"pass\", got %q", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("bad row %q: %w", fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("bad column %q: %w", fields[1], err)
	}
	if !game.InBounds(row, col) {
		return game.Move{}, fmt.Errorf("%w: (%d, %d)", game.ErrOutOfBounds, row, col)
	}
	return game.PlaceMove(row, col), nil
}

// Console plays a person typing moves on in against an agent.
type Console struct {
	Master   *LocalMaster
	Human    game.Color
	Opponent agent.Agent
	in       *bufio.Scanner
	out      io.Writer
}

func NewConsole(human game.Color, opponent agent.Agent, in io.Reader, out io.Writer) *Console {
	return &Console{
		Master:   NewLocalMaster(),
		Human:    human,
		Opponent: opponent,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run plays until the game ends or the input runs out, returning the final state.
func (c *Console) Run(rules game.Rules) (*game.GameState, error) {
	state, getUpdate := c.Master.Init(rules)
	var pending []searcher.Segment

	for {
		if _, over := state.Winner(); over {
			return state, nil
		}
		fmt.Fprintf(c.out, "%s\n%s to move: ", state.Position, state.CurrentPlayer)

		var move game.Move
		if state.CurrentPlayer == c.Human {
			if !c.in.Scan() {
				if err := c.in.Err(); err != nil {
					return state, fmt.Errorf("failed to read move: %w", err)
				}
				return state, io.EOF
			}
			m, err := ParseMove(c.in.Text())
			if err != nil {
				fmt.Fprintf(c.out, "%v\n", err)
				continue
			}
			move = m
		} else {
			move, _ = c.Opponent.FindMove(state, pending)
			pending = nil
			fmt.Fprintf(c.out, "%s\n", move)
		}

		err := c.Master.Play(move)
		if errors.Is(err, game.ErrIllegalMove) {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		if err != nil {
			return state, err
		}

		played, next := getUpdate()
		pending = append(pending, searcher.Segment{Move: *played, StateHash: next.Hash()})
		log.Debug().Msgf("player %s played %s", state.CurrentPlayer, *played)
		state = next
	}
}
