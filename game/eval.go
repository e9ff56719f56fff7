package game

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// Evaluators are looked up by the short variant names and by their long names.
var Evaluators = map[string]Evaluate{
	"A":                  EvaluateWeightedAdvantage,
	"B":                  EvaluateBalancedAdvantage,
	"C":                  EvaluateChasing,
	"weighted_advantage": EvaluateWeightedAdvantage,
	"balanced_advantage": EvaluateBalancedAdvantage,
	"chasing":            EvaluateChasing,
}

func EvaluatorByName(name string) (Evaluate, error) {
	evaluate, ok := Evaluators[name]
	if !ok {
		names := make([]string, 0, len(Evaluators))
		for n := range Evaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownEvaluator, name, names)
	}
	return evaluate, nil
}

// EvaluateWeightedAdvantage favours open space while the board is empty and
// shifts towards cutting off the opponent (whose moves count double) as the
// board fills up.
func EvaluateWeightedAdvantage(s State, player Player) float64 {
	if outcome, ok := decided(s, player); ok {
		return outcome
	}
	remaining, mine, theirs := tally(s, player)
	return remaining*mine + (1/remaining)*(mine-2*theirs)
}

// EvaluateBalancedAdvantage is EvaluateWeightedAdvantage with both players'
// moves weighted equally.
func EvaluateBalancedAdvantage(s State, player Player) float64 {
	if outcome, ok := decided(s, player); ok {
		return outcome
	}
	return balancedAdvantage(s, player)
}

// EvaluateChasing plays for open space early and for closing in on the
// opponent late in the game.
func EvaluateChasing(s State, player Player) float64 {
	if outcome, ok := decided(s, player); ok {
		return outcome
	}
	remaining := remainingSpace(s)
	mine := s.Location(player)
	theirs := s.Location(s.Opponent(player))
	proximity := math.Hypot(float64(mine.Row-theirs.Row), float64(mine.Col-theirs.Col))
	return remaining*balancedAdvantage(s, player) + (1/remaining)*proximity
}

func balancedAdvantage(s State, player Player) float64 {
	remaining, mine, theirs := tally(s, player)
	return remaining*mine + (1/remaining)*(mine-theirs)
}

// decided reports the infinite score of a won or lost state.
func decided(s State, player Player) (float64, bool) {
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	return 0, false
}

// remainingSpace is only zero on a full board, which is always decided.
func remainingSpace(s State) float64 {
	return float64(s.Width()*s.Height() - s.MovesPlayed())
}

func tally(s State, player Player) (remaining, mine, theirs float64) {
	remaining = remainingSpace(s)
	mine = float64(len(s.LegalMoves(player)))
	theirs = float64(len(s.LegalMoves(s.Opponent(player))))
	return remaining, mine, theirs
}
