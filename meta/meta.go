// meta/meta.go
package meta

import "time"

// BOARD_WIDTH and BOARD_HEIGHT define the default board size.
const BOARD_WIDTH = 7
const BOARD_HEIGHT = 7

// TIME_LIMIT defines the time each player has to choose a move.
const TIME_LIMIT = 150 * time.Millisecond

// TIMER_THRESHOLD defines the time left at which searches give up.
const TIMER_THRESHOLD = 10 * time.Millisecond

// NUM_GAMES defines the number of games per match-up.
const NUM_GAMES = 10

// OPENING_MOVES defines the number of random placements before agents take over.
const OPENING_MOVES = 2
