package movegen

import "github.com/kallenhart/corvid/pkg/board"

// CheckFunc reports whether side's king is currently attacked. Castling-candidate
// generation needs this ("the side to move is not currently in check") but check
// detection itself lives one layer up (pkg/legal reuses this package's ray geometry in
// the reverse direction); injecting it here avoids a package import cycle.
type CheckFunc func(b *board.Board, side board.Side) bool

// King returns the eight length-1 rays plus any castling candidates. King never verifies
// that the transit square is unattacked — only that the side to move is not currently in
// check and that the intervening squares are empty; a fuller legality filter is expected
// to reject castling through an attacked square (see pkg/legal).
func King(b *board.Board, sq board.Square, inCheck CheckFunc) []board.Move {
	out := KingSteps(b, sq)
	out = append(out, castlingCandidates(b, sq, inCheck)...)
	return out
}

// KingSteps returns the eight length-1 adjacency moves, with no castling candidates
// mixed in. pkg/legal uses this in reverse to test whether a square is attacked by an
// enemy king, where castling has no meaning.
func KingSteps(b *board.Board, sq board.Square) []board.Move {
	return rays(b, sq, AllDirections[:], 1)
}

func castlingCandidates(b *board.Board, sq board.Square, inCheck CheckFunc) []board.Move {
	side := b.At(sq).Side
	if inCheck != nil && inCheck(b, side) {
		return nil
	}

	rank := sq.Rank
	var out []board.Move
	if b.Castling().Allows(board.KingSide(side)) && emptyFiles(b, rank, 5, 6) {
		out = append(out, board.Move{From: sq, To: board.Sq(6, rank)})
	}
	if b.Castling().Allows(board.QueenSide(side)) && emptyFiles(b, rank, 1, 2, 3) {
		out = append(out, board.Move{From: sq, To: board.Sq(2, rank)})
	}
	return out
}

func emptyFiles(b *board.Board, rank int8, files ...int8) bool {
	for _, f := range files {
		if !b.At(board.Sq(f, rank)).IsEmpty() {
			return false
		}
	}
	return true
}
