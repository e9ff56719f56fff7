package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns an agent searching to the searcher's fixed depth. It
// gives up with game.NoMove if the search does not complete in time.
func NewMinimaxAgent(s *searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, metrics.SearchMetric) {
	collector := a.searcher.Metrics()
	collector.Start()

	result, err := a.searcher.Minimax(state, timeLeft)
	if err != nil {
		collector.SetTimedOut(true)
		log.Debug().Err(err).Msgf("minimax search at depth %d abandoned", a.searcher.Depth())
		return game.NoMove, collector.Complete()
	}
	return result.Move, collector.Complete()
}

type alphaBetaAgent struct {
	searcher *searcher.Searcher
}

// NewAlphaBetaAgent returns an agent using iterative deepening alpha-beta
// search. It plays the move of the deepest search completed in time.
func NewAlphaBetaAgent(s *searcher.Searcher) Agent {
	return alphaBetaAgent{searcher: s}
}

func (a alphaBetaAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, metrics.SearchMetric) {
	collector := a.searcher.Metrics()
	collector.Start()

	result := a.searcher.Deepen(state, timeLeft)
	return result.Move, collector.Complete()
}
