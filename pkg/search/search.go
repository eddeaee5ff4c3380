// Package search implements fixed-depth adversarial search over pkg/legal's children:
// negamax with optional alpha-beta pruning, and a principal-variation (scout) variant,
// both sharing the same (board, options) -> (score, move) shape. search.Launch wraps
// either algorithm for callers that want to run it off the calling goroutine with
// root-level progress reporting. The search itself never polls for a quit signal:
// Handle.Halt only stops the caller from waiting on it.
package search

import (
	"errors"
	"math/rand"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/legal"
	"github.com/kallenhart/corvid/pkg/ordering"
)

// ErrHalted indicates that a launched search was halted before it completed.
var ErrHalted = errors.New("search halted")

// Options hold the parameters of a single fixed-depth search.
type Options struct {
	// MaxDepth is the number of plies searched before falling back to the static
	// evaluator at the horizon.
	MaxDepth int
	// AlphaBeta enables alpha-beta pruning in Negamax. Negascout always prunes.
	AlphaBeta bool
	// Ordering selects how each node's legal children are presented to the search.
	Ordering ordering.Policy
	// Rand seeds the Random ordering policy's shuffle. May be nil.
	Rand *rand.Rand
	// Progress, if set, is called after every root move is searched with the move just
	// considered, the best score found among root moves so far, and the total node
	// count so far. Only Launch sets this; direct callers of Negamax/Negascout normally
	// leave it nil.
	Progress func(move board.Move, score board.Score, nodes uint64)
}

// Result is the outcome of a fixed-depth search from the root.
type Result struct {
	Score   board.Score
	Move    board.Move
	HasMove bool
	Nodes   uint64
}

// terminalScore is the value of a node with no legal children, from the perspective of
// the side to move there. Checkmate scores as a loss whose magnitude shrinks with ply
// (distance from the root) so that, once negated back up the tree, a forced mate found
// closer to the root outscores one found further down it. Stalemate is a draw.
func terminalScore(b *board.Board, ply int) board.Score {
	if !legal.InCheck(b, b.Side()) {
		return 0
	}
	return board.MinScore + board.Score(ply) + 1
}
