package movegen

import "github.com/kallenhart/corvid/pkg/board"

// Pawn returns pushes and diagonal captures. Promotion is not applied here: the caller
// sets Move.Promotion once it knows the destination rank is the mover's last rank.
func Pawn(b *board.Board, sq board.Square) []board.Move {
	p := b.At(sq)

	dir, startRank := int8(1), int8(1)
	if p.Side == board.Black {
		dir, startRank = -1, 6
	}

	var out []board.Move

	one := sq.Offset(0, dir)
	if one.Valid() && b.At(one).IsEmpty() {
		out = append(out, board.Move{From: sq, To: one})

		if sq.Rank == startRank {
			two := sq.Offset(0, 2*dir)
			if two.Valid() && b.At(two).IsEmpty() {
				out = append(out, board.Move{From: sq, To: two})
			}
		}
	}

	for _, df := range [2]int8{-1, 1} {
		diag := sq.Offset(df, dir)
		if !diag.Valid() {
			continue
		}
		if Classify(b, sq, diag).Class == Capture {
			out = append(out, board.Move{From: sq, To: diag})
		}
	}

	return out
}
