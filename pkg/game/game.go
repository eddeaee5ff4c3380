// Package game classifies a board's game state: in progress, checkmate, or stalemate.
// Other draw rules (repetition, the 50-move rule, insufficient material) are not
// implemented.
package game

import (
	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/legal"
)

// State is the outcome of classifying a board.
type State int

const (
	InProgress State = iota
	Checkmate
	Stalemate
)

func (s State) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Classify reports the game state of b from the perspective of the side to move: if
// there is at least one legal move, the game is in progress; otherwise the side to move
// is either checkmated or stalemated depending on whether it is currently in check.
func Classify(b *board.Board) State {
	if len(legal.GenerateAll(b)) > 0 {
		return InProgress
	}
	if legal.InCheck(b, b.Side()) {
		return Checkmate
	}
	return Stalemate
}
