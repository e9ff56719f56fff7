package engine

import (
	"context"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Local plays two in-process agents against each other. Agents[0] plays
// Player1 and Agents[1] plays Player2.
type Local struct {
	State     *game.Board
	Agents    [2]agent.Agent
	TimeLimit time.Duration
}

var _ Engine = (*Local)(nil)

func LocalEngine(board *game.Board, agents [2]agent.Agent, timeLimit time.Duration) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}
	return &Local{
		State:     board,
		Agents:    agents,
		TimeLimit: timeLimit,
	}
}

// Run executes the game loop until there's a winner. A player forfeits by
// exceeding the time limit or returning an illegal move. The winner is
// game.NoPlayer if ctx is cancelled first.
func (e *Local) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ActivePlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	log.Debug().Msgf("%v is starting", gameMetric.StartingPlayer)

	winner := game.NoPlayer
	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msgf("game abandoned at step %d", step)
			break
		}

		player := e.State.ActivePlayer()
		if len(e.State.LegalMoves(player)) == 0 {
			winner = e.State.Opponent(player)
			break
		}

		move, searchMetric, elapsed := e.requestMove(ctx, player)
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msgf("game abandoned at step %d", step)
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		if elapsed > e.TimeLimit {
			log.Warn().Msgf("%v forfeits: took %v of %v", player, elapsed, e.TimeLimit)
			winner = e.State.Opponent(player)
			gameMetric.Forfeit = true
			break
		}

		next, err := e.State.Play(move)
		if err != nil {
			log.Warn().Err(err).Msgf("%v forfeits", player)
			winner = e.State.Opponent(player)
			gameMetric.Forfeit = true
			break
		}
		log.Debug().Msgf("step %d: %v played %v at depth %d\n%v", step, player, move, searchMetric.Depth, next)
		e.State = next
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.MovesPlayed()
	return winner, gameMetric, moveMetrics
}

func (e *Local) requestMove(ctx context.Context, player game.Player) (game.Move, metrics.SearchMetric, time.Duration) {
	moveCtx, cancel := context.WithTimeout(ctx, e.TimeLimit)
	defer cancel()

	start := time.Now()
	move, searchMetric := e.Agents[player-1].FindMove(e.State, searcher.FromContext(moveCtx))
	return move, searchMetric, time.Since(start)
}
