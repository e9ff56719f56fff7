package experiments

import (
	"errors"
	"fmt"
	"os"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	KindRandom    = "random"
	KindMinimax   = "minimax"
	KindAlphaBeta = "alphabeta"
)

type Config struct {
	Name         string                `yaml:"name"`
	Games        int                   `yaml:"games"` // Per match-up
	TimeLimit    time.Duration         `yaml:"time_limit"`
	Width        int                   `yaml:"width"`
	Height       int                   `yaml:"height"`
	OpeningMoves int                   `yaml:"opening_moves"`
	Parallel     int                   `yaml:"parallel"`
	OutputDir    string                `yaml:"output_dir"`
	Agents       []metrics.AgentConfig `yaml:"agents"`
	MatchUps     [][]int               `yaml:"match_ups"` // Pairs of agent IDs
}

// DefaultConfig pits iterative deepening agents with each evaluator against a
// random and a fixed-depth minimax agent.
func DefaultConfig() Config {
	return Config{
		Name:         "evaluators",
		Games:        meta.NUM_GAMES,
		TimeLimit:    meta.TIME_LIMIT,
		Width:        meta.BOARD_WIDTH,
		Height:       meta.BOARD_HEIGHT,
		OpeningMoves: meta.OPENING_MOVES,
		Parallel:     1,
		OutputDir:    "experiments",
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: KindRandom, Seed: 1},
			{ID: 2, Kind: KindMinimax, Depth: searcher.DefaultDepth, Evaluator: "A", Timeout: meta.TIMER_THRESHOLD},
			{ID: 3, Kind: KindAlphaBeta, Evaluator: "A", Timeout: meta.TIMER_THRESHOLD},
			{ID: 4, Kind: KindAlphaBeta, Evaluator: "B", Timeout: meta.TIMER_THRESHOLD},
			{ID: 5, Kind: KindAlphaBeta, Evaluator: "C", Timeout: meta.TIMER_THRESHOLD},
		},
		MatchUps: [][]int{{3, 1}, {3, 2}, {4, 1}, {4, 2}, {5, 1}, {5, 2}},
	}
}

// LoadConfig reads a YAML experiment file. Fields it leaves out keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("missing experiment name")
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %v", c.TimeLimit)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	}
	if c.OpeningMoves < 0 || c.Parallel <= 0 {
		return errors.New("opening moves must not be negative and parallel must be positive")
	}

	byID := lo.KeyBy(c.Agents, func(a metrics.AgentConfig) int { return a.ID })
	if len(byID) != len(c.Agents) {
		return errors.New("agent IDs must be unique")
	}
	for _, a := range c.Agents {
		if _, err := NewAgent(a); err != nil {
			return fmt.Errorf("agent %d: %w", a.ID, err)
		}
	}
	if len(c.MatchUps) == 0 {
		return errors.New("no match-ups")
	}
	for _, m := range c.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("match-up %v must name two agents", m)
		}
		for _, id := range m {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf("match-up %v names unknown agent %d", m, id)
			}
		}
	}
	return nil
}

// NewAgent builds a fresh agent for one game.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(config.Seed), nil
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Evaluator != "" {
		evaluate, err := game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	if config.Timeout > 0 {
		options = append(options, searcher.WithTimeout(config.Timeout))
	}

	switch config.Kind {
	case KindMinimax:
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		return agent.NewMinimaxAgent(searcher.New(options...)), nil
	case KindAlphaBeta:
		if config.MaxDepth > 0 {
			options = append(options, searcher.WithMaxDepth(config.MaxDepth))
		}
		return agent.NewAlphaBetaAgent(searcher.New(options...)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
