package searcher

import (
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
)

type Option func(s *Searcher)

// Searcher holds the search configuration fixed at construction. Nothing about
// an individual move is kept between calls.
type Searcher struct {
	depth    int
	maxDepth int // 0 means iterative deepening runs until the time runs out
	evaluate game.Evaluate
	timeout  time.Duration
	progress func(Result)
	metrics  metrics.Collector
}

// WithDepth sets the depth of fixed-depth searches.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithMaxDepth caps iterative deepening.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithTimeout sets the remaining time below which a search is cancelled.
func WithTimeout(threshold time.Duration) Option {
	return func(s *Searcher) {
		if threshold > 0 {
			s.timeout = threshold
		}
	}
}

// WithProgress registers a callback run after every completed iterative
// deepening iteration.
func WithProgress(progress func(Result)) Option {
	return func(s *Searcher) {
		s.progress = progress
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateWeightedAdvantage,
		timeout:  DefaultTimeout,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Metrics() metrics.Collector {
	return s.metrics
}

// search is the context of a single move request.
type search struct {
	player   game.Player
	evaluate game.Evaluate
	guard    guard
	metrics  metrics.Collector
	// truncated records whether any node was cut off by the depth limit
	truncated bool
}

func (s *Searcher) newSearch(state game.State, timeLeft TimeLeft) *search {
	if timeLeft == nil {
		timeLeft = Unlimited()
	}
	return &search{
		player:   state.ActivePlayer(),
		evaluate: s.evaluate,
		guard:    guard{timeLeft: timeLeft, threshold: s.timeout},
		metrics:  s.metrics,
	}
}

// root picks the first move with the highest value. Moves are tried in the
// order the state generates them.
func (x *search) root(state game.State, depth int, prune bool) (Result, error) {
	if err := x.guard.check(); err != nil {
		return noResult(depth), err
	}
	x.metrics.AddNode()

	moves := state.LegalMoves(x.player)
	if len(moves) == 0 {
		return noResult(depth), nil
	}

	best := noResult(depth)
	alpha, beta := Loss, Win
	for i, move := range moves {
		child := x.forecast(state, move)

		var value float64
		var err error
		if prune {
			value, err = x.alphabeta(child, depth-1, alpha, beta, false)
		} else {
			value, err = x.minimax(child, depth-1, false)
		}
		if err != nil {
			return noResult(depth), err
		}

		if i == 0 || value > best.Value {
			best.Move, best.Value = move, value
		}
		if prune {
			if best.Value >= beta {
				x.metrics.AddCutoff()
				break
			}
			alpha = max(alpha, best.Value)
		}
	}
	return best, nil
}

func (x *search) forecast(state game.State, move game.Move) game.State {
	x.metrics.AddForecast()
	return state.Forecast(move)
}

// leaf reports whether the search stops at state and with which value.
func (x *search) leaf(state game.State, depth int, maximizing bool) (float64, bool) {
	if len(state.LegalMoves(state.ActivePlayer())) == 0 {
		return terminal(maximizing), true
	}
	if depth <= 0 {
		x.truncated = true
		x.metrics.AddEvaluation()
		return x.evaluate(state, x.player), true
	}
	return 0, false
}
