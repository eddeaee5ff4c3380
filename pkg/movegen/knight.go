package movegen

import "github.com/kallenhart/corvid/pkg/board"

// knightOffsets are the eight (+-1,+-2)/(+-2,+-1) leaps.
var knightOffsets = [8][2]int8{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Knight returns every non-Illegal leap from sq.
func Knight(b *board.Board, sq board.Square) []board.Move {
	var out []board.Move
	for _, o := range knightOffsets {
		to := sq.Offset(o[0], o[1])
		if Classify(b, sq, to).Class != Illegal {
			out = append(out, board.Move{From: sq, To: to})
		}
	}
	return out
}
