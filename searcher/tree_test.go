package searcher

import (
	"time"

	"isolation/game"
)

// mockNode is a hand-built game tree. Leaves without children are terminal for
// the side to move; value is what mockEvaluate scores the node.
type mockNode struct {
	value    float64
	children []*mockNode
}

func leaf(value float64) *mockNode {
	return &mockNode{value: value, children: []*mockNode{{}}}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

// terminalNode has no moves for the side to move.
func terminalNode() *mockNode {
	return &mockNode{}
}

type mockState struct {
	node   *mockNode
	active game.Player
}

func newMockState(root *mockNode) mockState {
	return mockState{node: root, active: game.Player1}
}

func (m mockState) ActivePlayer() game.Player {
	return m.active
}

func (m mockState) Opponent(p game.Player) game.Player {
	if p == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

func (m mockState) LegalMoves(p game.Player) []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (m mockState) Forecast(move game.Move) game.State {
	return mockState{node: m.node.children[move.Col], active: m.Opponent(m.active)}
}

func (m mockState) IsWinner(p game.Player) bool {
	return p != m.active && len(m.node.children) == 0
}

func (m mockState) IsLoser(p game.Player) bool {
	return p == m.active && len(m.node.children) == 0
}

func (m mockState) Location(p game.Player) game.Move {
	return game.NoMove
}

func (m mockState) Width() int       { return 1 }
func (m mockState) Height() int      { return 1 }
func (m mockState) MovesPlayed() int { return 0 }

func mockEvaluate(s game.State, player game.Player) float64 {
	return s.(mockState).node.value
}

// countdown allows the given number of guard checks before running out of time.
func countdown(checks int) TimeLeft {
	n := 0
	return func() time.Duration {
		n++
		if n > checks {
			return 0
		}
		return time.Hour
	}
}

// textbookTree is the three-by-three tree with a minimax value of 3 at move 0.
func textbookTree() *mockNode {
	return branch(
		branch(leaf(3), leaf(12), leaf(8)),
		branch(leaf(2), leaf(4), leaf(6)),
		branch(leaf(14), leaf(5), leaf(2)),
	)
}
