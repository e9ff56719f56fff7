package searcher

import (
	"errors"
	"math"

	"isolation/game"
)

// Values of decided positions from the searching player's perspective. They
// match the scores evaluators give to won and lost states.
var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)

// ErrSearchTimeout is returned through every active search frame once the
// remaining time drops below the timeout threshold.
var ErrSearchTimeout = errors.New("search timeout")

// Result is the outcome of a completed search. Depth is the depth the search
// completed at.
type Result struct {
	Move  game.Move
	Value float64
	Depth int
}

func noResult(depth int) Result {
	return Result{Move: game.NoMove, Value: Loss, Depth: depth}
}

// terminal is the value of a node whose side to move has no legal moves.
func terminal(maximizing bool) float64 {
	if maximizing {
		return Loss
	}
	return Win
}
