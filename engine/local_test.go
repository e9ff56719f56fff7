package engine

import (
	"context"
	"testing"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	move  game.Move
	delay time.Duration
}

func (a scriptedAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, metrics.SearchMetric) {
	time.Sleep(a.delay)
	return a.move, metrics.SearchMetric{}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing until the player on turn cannot move", func(t *testing.T) {
		e := LocalEngine(game.NewBoard(5, 5), [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, time.Second)

		winner, gameMetric, moveMetrics := e.Run(context.Background())

		require.NotEqual(t, game.NoPlayer, winner)
		require.True(t, e.State.IsWinner(winner), "Winner should be the player not stuck")
		require.False(t, gameMetric.Forfeit)
		require.Equal(t, game.Player1, gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i%2 == 0 {
				require.Equal(t, game.Player1, mm.Player, "Players should alternate")
			} else {
				require.Equal(t, game.Player2, mm.Player, "Players should alternate")
			}
		}
	})

	t.Run("playing search agents within the time limit", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewAlphaBetaAgent(searcher.New(searcher.WithMetrics())),
			agent.NewMinimaxAgent(searcher.New(searcher.WithDepth(1))),
		}
		board := game.NewBoard(5, 5).Forecast(game.Move{Row: 2, Col: 2}).(*game.Board)
		board, err := board.Play(game.Move{Row: 0, Col: 0})
		require.NoError(t, err)
		e := LocalEngine(board, agents, 100*time.Millisecond)

		winner, gameMetric, _ := e.Run(context.Background())

		require.NotEqual(t, game.NoPlayer, winner)
		require.False(t, gameMetric.Forfeit)
	})

	t.Run("forfeiting a player returning no move while moves remain", func(t *testing.T) {
		e := LocalEngine(game.NewBoard(3, 3), [2]agent.Agent{scriptedAgent{move: game.NoMove}, agent.NewRandomAgent(1)}, time.Second)

		winner, gameMetric, moveMetrics := e.Run(context.Background())

		require.Equal(t, game.Player2, winner)
		require.True(t, gameMetric.Forfeit)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, 0, gameMetric.TotalMoves)
	})

	t.Run("forfeiting a player exceeding the time limit", func(t *testing.T) {
		slow := scriptedAgent{move: game.Move{Row: 1, Col: 1}, delay: 50 * time.Millisecond}
		e := LocalEngine(game.NewBoard(3, 3), [2]agent.Agent{slow, agent.NewRandomAgent(1)}, 10*time.Millisecond)

		winner, gameMetric, _ := e.Run(context.Background())

		require.Equal(t, game.Player2, winner)
		require.True(t, gameMetric.Forfeit)
	})

	t.Run("abandoning the game when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e := LocalEngine(game.NewBoard(3, 3), [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, time.Second)

		winner, gameMetric, moveMetrics := e.Run(ctx)

		require.Equal(t, game.NoPlayer, winner)
		require.Empty(t, moveMetrics)
		require.Equal(t, game.NoPlayer, gameMetric.Winner)
	})
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewBoard(3, 3), [2]agent.Agent{agent.NewRandomAgent(1)}, time.Second)
		})
	})

	t.Run("panics without a time limit", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewBoard(3, 3), [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, 0)
		})
	})
}
