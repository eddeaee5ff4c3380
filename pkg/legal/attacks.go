// Package legal layers check detection, full legality filtering and external move
// validation on top of pkg/board and pkg/movegen. It is the only package that knows how
// to turn movegen's pseudo-legal geometry into moves that do not leave the mover's own
// king in check.
package legal

import (
	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/movegen"
)

// InCheck reports whether side's king is currently attacked.
func InCheck(b *board.Board, side board.Side) bool {
	return Attacks(b, b.King(side), side)
}

// Attacks reports whether sq is attacked by defender's opponent. It works by emitting
// each piece kind's geometry in reverse from sq and checking whether an enemy piece of
// the matching kind sits at the far end — the same trick a rook "sees" a rook, a bishop
// "sees" a bishop, and so on, regardless of which piece (if any) actually occupies sq.
func Attacks(b *board.Board, sq board.Square, defender board.Side) bool {
	opp := defender.Opponent()

	dr := int8(1)
	if defender == board.Black {
		dr = -1
	}
	for _, df := range [2]int8{-1, 1} {
		from := sq.Offset(df, dr)
		if p := b.At(from); p.Side == opp && p.Kind == board.Pawn {
			return true
		}
	}

	for _, m := range movegen.Knight(probe(b, sq, defender), sq) {
		if p := b.At(m.To); !p.IsEmpty() && p.Kind == board.Knight {
			return true
		}
	}
	for _, m := range movegen.Bishop(probe(b, sq, defender), sq) {
		if p := b.At(m.To); !p.IsEmpty() && (p.Kind == board.Bishop || p.Kind == board.Queen) {
			return true
		}
	}
	for _, m := range movegen.Rook(probe(b, sq, defender), sq) {
		if p := b.At(m.To); !p.IsEmpty() && (p.Kind == board.Rook || p.Kind == board.Queen) {
			return true
		}
	}
	for _, m := range movegen.KingSteps(probe(b, sq, defender), sq) {
		if p := b.At(m.To); !p.IsEmpty() && p.Kind == board.King {
			return true
		}
	}
	return false
}

// probe returns b unchanged unless sq is empty, in which case it returns a shallow copy
// with a defender piece placed there — movegen.Classify needs a non-empty "mover" at sq
// to tell friend from foe, and Attacks is routinely asked about empty squares (castling
// transit squares, in particular).
func probe(b *board.Board, sq board.Square, defender board.Side) *board.Board {
	if !b.At(sq).IsEmpty() {
		return b
	}
	return b.WithPiece(sq, board.Piece{Side: defender, Kind: board.King})
}
