package movegen

import "github.com/kallenhart/corvid/pkg/board"

// Moves returns the raw pseudo-legal moves for the piece on sq, dispatching by kind. Pawn
// diagonal captures and castling candidates are the only moves that consult board state
// beyond "is this square occupied, and by whom"; inCheck is only used by King/castling.
func Moves(b *board.Board, sq board.Square, inCheck CheckFunc) []board.Move {
	p := b.At(sq)
	switch p.Kind {
	case board.Pawn:
		return Pawn(b, sq)
	case board.Knight:
		return Knight(b, sq)
	case board.Bishop:
		return Bishop(b, sq)
	case board.Rook:
		return Rook(b, sq)
	case board.Queen:
		return Queen(b, sq)
	case board.King:
		return King(b, sq, inCheck)
	default:
		return nil
	}
}

// All returns every pseudo-legal move for side, across all of its occupied squares.
func All(b *board.Board, side board.Side, inCheck CheckFunc) []board.Move {
	var out []board.Move
	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			sq := board.Sq(file, rank)
			p := b.At(sq)
			if p.IsEmpty() || p.Side != side {
				continue
			}
			out = append(out, Moves(b, sq, inCheck)...)
		}
	}
	return out
}
