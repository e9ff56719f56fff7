package experiments

import (
	"context"
	"fmt"
	"sort"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// Standing is an agent's record over an experiment.
type Standing struct {
	AgentID  int
	Wins     int
	Losses   int
	Forfeits int // Losses by timeout or illegal move
}

type task struct {
	id     int
	agents [2]metrics.AgentConfig // Playing Player1 and Player2
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every match-up, alternating which agent moves first, and stores
// the records under the configured output directory.
func Run(ctx context.Context, cfg Config) ([]Standing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	byID := lo.KeyBy(cfg.Agents, func(a metrics.AgentConfig) int { return a.ID })

	tasks := []task{}
	for _, matchUp := range cfg.MatchUps {
		first, second := byID[matchUp[0]], byID[matchUp[1]]
		for i := 0; i < cfg.Games; i++ {
			tasks = append(tasks, task{id: len(tasks) + 1, agents: [2]metrics.AgentConfig{first, second}})
			first, second = second, first
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(tasks))

	outcomes := make([]outcome, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			o, err := runGame(ctx, cfg, t)
			if err != nil {
				return fmt.Errorf("game %d: %w", t.id, err)
			}
			outcomes[i] = o
			log.Info().Msgf("completed game %d of %d between agent %d and agent %d with winner: %v",
				t.id, len(tasks), t.agents[0].ID, t.agents[1].ID, o.game.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(lo.Map(outcomes, func(o outcome, _ int) metrics.GameRecord { return o.game })); err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(lo.FlatMap(outcomes, func(o outcome, _ int) []metrics.MoveRecord { return o.moves })); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	standings := tally(outcomes)
	for _, s := range standings {
		log.Info().Msgf("agent %d: %d wins, %d losses (%d forfeits)", s.AgentID, s.Wins, s.Losses, s.Forfeits)
	}
	return standings, nil
}

func runGame(ctx context.Context, cfg Config, t task) (outcome, error) {
	var agents [2]agent.Agent
	for i, config := range t.agents {
		a, err := NewAgent(config)
		if err != nil {
			return outcome{}, err
		}
		agents[i] = a
	}

	board, err := openBoard(cfg)
	if err != nil {
		return outcome{}, err
	}

	_, gameMetric, moveMetrics := engine.LocalEngine(board, agents, cfg.TimeLimit).Run(ctx)
	if err := ctx.Err(); err != nil {
		return outcome{}, err
	}

	return outcome{
		game: metrics.GameRecord{
			ID:         t.id,
			Agent1:     t.agents[0].ID,
			Agent2:     t.agents[1].ID,
			GameMetric: gameMetric,
		},
		moves: lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: t.id, MoveMetric: mm}
		}),
	}, nil
}

// openBoard plays the random opening placements.
func openBoard(cfg Config) (*game.Board, error) {
	board := game.NewBoard(cfg.Width, cfg.Height)
	for i := 0; i < cfg.OpeningMoves; i++ {
		moves := board.LegalMoves(board.ActivePlayer())
		if len(moves) == 0 {
			break
		}
		next, err := board.Play(moves[frand.Intn(len(moves))])
		if err != nil {
			return nil, err
		}
		board = next
	}
	return board, nil
}

func tally(outcomes []outcome) []Standing {
	byAgent := map[int]*Standing{}
	standing := func(id int) *Standing {
		if s, ok := byAgent[id]; ok {
			return s
		}
		s := &Standing{AgentID: id}
		byAgent[id] = s
		return s
	}

	for _, o := range outcomes {
		winnerID, loserID := o.game.Agent1, o.game.Agent2
		switch o.game.Winner {
		case game.Player2:
			winnerID, loserID = loserID, winnerID
		case game.NoPlayer:
			continue
		}
		standing(winnerID).Wins++
		loser := standing(loserID)
		loser.Losses++
		if o.game.Forfeit {
			loser.Forfeits++
		}
	}

	standings := lo.MapToSlice(byAgent, func(_ int, s *Standing) Standing { return *s })
	sort.Slice(standings, func(i, j int) bool { return standings[i].AgentID < standings[j].AgentID })
	return standings
}
