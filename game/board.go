package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
)

var ErrIllegalMove = errors.New("illegal move")

// Knight jumps, in the order moves are generated.
var directions = []Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an isolation board. Each player's first move places it on any blank
// cell; afterwards players jump like chess knights onto blank cells. Every
// visited cell stays blocked for the rest of the game.
type Board struct {
	width     int
	height    int
	blocked   []bool // Indexed by row*width + col
	locations [3]Move
	active    Player
	moveCount int
}

// NewBoard returns an empty board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [3]Move{NoMove, NoMove, NoMove},
		active:    Player1,
	}
}

// ParseBoard builds a board from rows of '.' (blank), 'X' (blocked), '1' and
// '2' (player locations). Every non-blank cell counts as a played move.
func ParseBoard(rows []string, active Player) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.New("parse board: no rows")
	}
	if active != Player1 && active != Player2 {
		return nil, fmt.Errorf("parse board: invalid active player %d", active)
	}
	b := NewBoard(len(rows[0]), len(rows))
	b.active = active
	for r, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("parse board: row %d has width %d, want %d", r, len(row), b.width)
		}
		for c, cell := range row {
			switch cell {
			case '.':
				continue
			case 'X':
			case '1':
				b.locations[Player1] = Move{r, c}
			case '2':
				b.locations[Player2] = Move{r, c}
			default:
				return nil, fmt.Errorf("parse board: unexpected cell %q at (%d,%d)", cell, r, c)
			}
			b.blocked[b.index(Move{r, c})] = true
			b.moveCount++
		}
	}
	return b, nil
}

func (b *Board) index(m Move) int {
	return m.Row*b.width + m.Col
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

func (b *Board) isBlank(m Move) bool {
	return b.inBounds(m) && !b.blocked[b.index(m)]
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) MovesPlayed() int {
	return b.moveCount
}

func (b *Board) ActivePlayer() Player {
	return b.active
}

func (b *Board) Opponent(p Player) Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic(fmt.Sprintf("no opponent for %v", p))
	}
}

func (b *Board) Location(p Player) Move {
	return b.locations[p]
}

func (b *Board) LegalMoves(p Player) []Move {
	from := b.locations[p]
	if from.IsNone() {
		moves := make([]Move, 0, len(b.blocked))
		for r := 0; r < b.height; r++ {
			for c := 0; c < b.width; c++ {
				if m := (Move{r, c}); b.isBlank(m) {
					moves = append(moves, m)
				}
			}
		}
		return moves
	}

	return lo.FilterMap(directions, func(d Move, _ int) (Move, bool) {
		to := Move{from.Row + d.Row, from.Col + d.Col}
		return to, b.isBlank(to)
	})
}

func (b *Board) IsLegal(move Move) bool {
	return lo.Contains(b.LegalMoves(b.active), move)
}

func (b *Board) IsWinner(p Player) bool {
	return p != b.active && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) IsLoser(p Player) bool {
	return p == b.active && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) Forecast(move Move) State {
	next, err := b.Play(move)
	if err != nil {
		panic(err)
	}
	return next
}

// Play returns a copy of the board with move applied for the active player.
func (b *Board) Play(move Move) (*Board, error) {
	if !b.IsLegal(move) {
		return nil, fmt.Errorf("%w: %v by %v", ErrIllegalMove, move, b.active)
	}
	next := b.Copy()
	next.blocked[next.index(move)] = true
	next.locations[b.active] = move
	next.active = b.Opponent(b.active)
	next.moveCount++
	return next, nil
}

func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			m := Move{r, c}
			switch {
			case m == b.locations[Player1]:
				sb.WriteByte('1')
			case m == b.locations[Player2]:
				sb.WriteByte('2')
			case b.blocked[b.index(m)]:
				sb.WriteByte('X')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
