package searcher

import (
	"isolation/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta searches to the configured depth, skipping subtrees that cannot
// change the result. The value found equals Minimax's for the same depth.
func (s *Searcher) AlphaBeta(state game.State, timeLeft TimeLeft) (Result, error) {
	x := s.newSearch(state, timeLeft)
	result, err := x.root(state, s.depth, true)
	if err != nil {
		return result, err
	}
	x.metrics.SetDepth(s.depth)
	return result, nil
}

// Deepen runs AlphaBeta at depths 1, 2, 3, ... and returns the result of the
// deepest search that completed before the time ran out. It stops early once a
// search reaches every terminal position or the maximum depth is reached.
func (s *Searcher) Deepen(state game.State, timeLeft TimeLeft) Result {
	x := s.newSearch(state, timeLeft)
	best := noResult(0)

	for depth := 1; s.maxDepth == 0 || depth <= s.maxDepth; depth++ {
		x.truncated = false
		result, err := x.root(state, depth, true)
		if err != nil {
			x.metrics.SetTimedOut(true)
			log.Debug().Msgf("search at depth %d cancelled, keeping result of depth %d", depth, best.Depth)
			break
		}

		best = result
		x.metrics.SetDepth(depth)
		if s.progress != nil {
			s.progress(best)
		}
		log.Debug().Msgf("completed depth %d: best move %v with value %v", depth, best.Move, best.Value)

		if !x.truncated { // Deeper searches would see the same tree
			break
		}
	}
	return best
}

func (x *search) alphabeta(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, error) {
	if err := x.guard.check(); err != nil {
		return 0, err
	}
	x.metrics.AddNode()

	if value, ok := x.leaf(state, depth, maximizing); ok {
		return value, nil
	}

	best := terminal(maximizing)
	for _, move := range state.LegalMoves(state.ActivePlayer()) {
		value, err := x.alphabeta(x.forecast(state, move), depth-1, alpha, beta, !maximizing)
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, value)
			if best >= beta {
				x.metrics.AddCutoff()
				return best, nil
			}
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			if best <= alpha {
				x.metrics.AddCutoff()
				return best, nil
			}
			beta = min(beta, best)
		}
	}
	return best, nil
}
