// Package eval implements a static position evaluator: material plus piece-square table
// bonus, memoized per board.
package eval

import (
	"github.com/kallenhart/corvid/pkg/board"
)

// NominalValue is a piece's material value in centipawns.
func NominalValue(k board.Kind) board.Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// Value returns the memoized static evaluation of b, computing and storing it on first
// read. Positive favors White. Each occupied square contributes its nominal material
// value plus a positional bonus from the matching piece-square table, negated for Black.
func Value(b *board.Board) board.Score {
	if v, ok := b.Eval(); ok {
		return v
	}

	var total board.Score
	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			sq := board.Sq(file, rank)
			p := b.At(sq)
			if p.IsEmpty() {
				continue
			}
			contribution := NominalValue(p.Kind) + squareBonus(p, sq)
			if p.Side == board.Black {
				contribution = -contribution
			}
			total += contribution
		}
	}

	b.SetEval(total)
	return total
}

// squareBonus looks up the piece-square table entry for p standing on sq, mirroring the
// table (7-r, 7-c) for Black so that every table is authored from White's perspective
// only.
func squareBonus(p board.Piece, sq board.Square) board.Score {
	table := pieceSquareTable(p.Kind)
	if table == nil {
		return 0
	}
	r, c := sq.Rank, sq.File
	if p.Side == board.Black {
		r, c = 7-r, 7-c
	}
	return board.Score(table[r][c])
}
