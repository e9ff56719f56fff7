package searcher

import "isolation/game"

// Minimax searches every move to the configured depth. It returns
// ErrSearchTimeout if the time budget ran out before the search completed.
func (s *Searcher) Minimax(state game.State, timeLeft TimeLeft) (Result, error) {
	x := s.newSearch(state, timeLeft)
	result, err := x.root(state, s.depth, false)
	if err != nil {
		return result, err
	}
	x.metrics.SetDepth(s.depth)
	return result, nil
}

// minimax returns the value of state for the searching player. maximizing is
// true when the searching player is to move.
func (x *search) minimax(state game.State, depth int, maximizing bool) (float64, error) {
	if err := x.guard.check(); err != nil {
		return 0, err
	}
	x.metrics.AddNode()

	if value, ok := x.leaf(state, depth, maximizing); ok {
		return value, nil
	}

	best := terminal(maximizing)
	for _, move := range state.LegalMoves(state.ActivePlayer()) {
		value, err := x.minimax(x.forecast(state, move), depth-1, !maximizing)
		if err != nil {
			return 0, err
		}
		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best, nil
}
