package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
// It is not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state game.State, _ searcher.TimeLeft) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
