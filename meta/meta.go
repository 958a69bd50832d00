// meta/meta.go
package meta

import "time"

// BOARD_SIZE defines the default board edge length.
const BOARD_SIZE = 8

// DEPTH defines the default depth bound for fixed-depth search.
const DEPTH = 4

// DURATION defines the default time budget for iterative deepening.
const DURATION = 2 * time.Second

// MAX_TURNS guards the game loop. Every move removes a chip, so no game on a
// legal board can last this long.
const MAX_TURNS = 100

// WORKERS defines how many games an experiment plays at once.
const WORKERS = 4
