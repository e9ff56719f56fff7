package searcher

import "time"

// Defaults for searches

const DefaultDepth = 3

// Remaining time below which a search is abandoned
const DefaultTimeout = 10 * time.Millisecond
