package game

// Player identifies one of the two contestants.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// State should be immutable - Forecast always returns a new copy and never
// modifies the receiver.
type State interface {
	ActivePlayer() Player
	Opponent(p Player) Player
	// LegalMoves returns the moves available to p in a fixed order. An empty
	// slice means p cannot move.
	LegalMoves(p Player) []Move
	// Forecast returns the state after the active player plays move. It panics
	// if move is not legal.
	Forecast(move Move) State
	IsWinner(p Player) bool
	IsLoser(p Player) bool
	// Location returns NoMove if p has not been placed yet.
	Location(p Player) Move
	Width() int
	Height() int
	MovesPlayed() int
}

// Evaluate scores state from player's perspective. It returns +Inf for a
// confirmed win and -Inf for a confirmed loss.
type Evaluate func(state State, player Player) float64
