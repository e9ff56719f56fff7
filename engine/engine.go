package engine

import (
	"context"

	"isolation/experiments/metrics"
	"isolation/game"
)

type Engine interface {
	// Run plays a game until the player on turn cannot move or forfeits
	Run(ctx context.Context) (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
