package main

import (
	"flag"
	"os"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	black      string
	white      string
	level      int
	evaluation string
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	rules      string
	out        string
	verbose    bool
}

func main() {
	cfg := parseFlags()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch cfg.mode {
	case "play":
		err = runPlay(cfg)
	case "human":
		err = runHuman(cfg)
	case "levels":
		err = experiments.RunLevelExperiment(cfg.out)
	case "parallel":
		err = experiments.RunParallelizationExperiment(cfg.out)
	case "throughput":
		err = experiments.RunThroughputExperiment(cfg.out)
	default:
		log.Fatal().Msgf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play, human, levels, parallel or throughput")
	flag.StringVar(&cfg.black, "black", string(metrics.GreedyAgent), "black agent: greedy, mcts or random; in human mode the person plays black")
	flag.StringVar(&cfg.white, "white", string(metrics.GreedyAgent), "white agent: greedy, mcts or random")
	flag.IntVar(&cfg.level, "level", meta.LEVEL, "search level of greedy agents (odd number)")
	flag.StringVar(&cfg.evaluation, "eval", "weighted", "evaluation: discs, mobility, corners, weighted or combined")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "MCTS goroutines")
	flag.IntVar(&cfg.episodes, "episodes", meta.EPISODES, "MCTS episodes per move, 0 to search by duration")
	flag.DurationVar(&cfg.duration, "duration", 0, "MCTS time per move")
	flag.IntVar(&cfg.cutoff, "cutoff", meta.WITH_CUTOFF, "MCTS rollout cutoff")
	flag.StringVar(&cfg.rules, "rules", "full", "end of game: full (board full) or nomoves (also when neither side can move)")
	flag.StringVar(&cfg.out, "out", ".", "directory for transcripts and experiment records")
	flag.BoolVar(&cfg.verbose, "v", false, "log every candidate move")
	flag.Parse()
	return cfg
}

func (cfg config) agentConfig(kind string) metrics.AgentConfig {
	return metrics.AgentConfig{
		Kind:       metrics.AgentKind(kind),
		Level:      cfg.level,
		Evaluation: cfg.evaluation,
		Goroutines: cfg.goroutines,
		Episodes:   cfg.episodes,
		Duration:   cfg.duration,
		Cutoff:     cfg.cutoff,
	}
}

func (cfg config) gameRules() game.Rules {
	if cfg.rules == "nomoves" {
		return game.NoMovesRules{}
	}
	return game.BoardFullRules{}
}

func runPlay(cfg config) error {
	if cfg.level%2 == 0 {
		log.Warn().Msgf("level %d is even, the search ends on the opponent's reply", cfg.level)
	}

	black, err := experiments.NewAgent(cfg.agentConfig(cfg.black))
	if err != nil {
		return err
	}
	white, err := experiments.NewAgent(cfg.agentConfig(cfg.white))
	if err != nil {
		return err
	}
	rules := cfg.gameRules()

	transcript, path, err := metrics.CreateTranscript(cfg.out)
	if err != nil {
		return err
	}
	defer transcript.Close()
	log.Info().Msgf("writing transcript to %s", path)

	e := engine.NewLocalEngine(black, white,
		engine.WithRules(rules),
		engine.WithMaxTurns(meta.MAX_TURNS),
		engine.WithTranscript(transcript),
	)
	e.Run()
	return nil
}

func runHuman(cfg config) error {
	opponent, err := experiments.NewAgent(cfg.agentConfig(cfg.white))
	if err != nil {
		return err
	}

	console := gamemaster.NewConsole(game.Black, opponent, os.Stdin, os.Stdout)
	state, err := console.Run(cfg.gameRules())
	if err != nil {
		return err
	}
	outcome, _ := state.Winner()
	log.Info().Msgf("the winner is player: %s", outcome)
	return nil
}
