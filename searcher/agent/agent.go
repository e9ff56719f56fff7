package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns a legal move for the player on turn, or game.NoMove if
	// there is none or no search completed in time, and the search metrics
	// (if collected).
	FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, metrics.SearchMetric)
}
