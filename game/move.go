package game

import "fmt"

// Move is a board coordinate.
type Move struct {
	Row int
	Col int
}

// NoMove means there is no legal move.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
