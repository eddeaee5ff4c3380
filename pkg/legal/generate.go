package legal

import (
	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/movegen"
)

// Child pairs a legal move with the board it produces, so that callers (pkg/search,
// pkg/ordering) never need to call Apply themselves.
type Child struct {
	Move  board.Move
	Board *board.Board
}

// GenerateAll returns every fully legal move for the side to move: pseudo-legal geometry
// from pkg/movegen, filtered to the moves that do not leave the mover's own king in
// check, with pawn promotions expanded to queen and castling additionally rejected if
// the king would pass through an attacked square.
func GenerateAll(b *board.Board) []Child {
	side := b.Side()
	var out []Child
	for _, m := range movegen.All(b, side, InCheck) {
		if mover := b.At(m.From); mover.Kind == board.Pawn && board.IsPromotionRank(mover.Side, m.To.Rank) {
			m.Promotion = board.Queen
		}
		if isCastle(b, m) && !transitSafe(b, m) {
			continue
		}
		child := b.Apply(m)
		if InCheck(child, side) {
			continue
		}
		out = append(out, Child{Move: m, Board: child})
	}
	return out
}

// isCastle reports whether m moves a king two files.
func isCastle(b *board.Board, m board.Move) bool {
	if b.At(m.From).Kind != board.King {
		return false
	}
	df := m.To.File - m.From.File
	return df == 2 || df == -2
}

// transitSafe reports whether the square the king passes over during m is unattacked.
// King generation already refuses to offer a castle while the side to move is in check
// (the origin square), and GenerateAll's general in-check filter covers the destination
// square once m is applied; this covers the one square in between that neither of those
// checks reaches.
func transitSafe(b *board.Board, m board.Move) bool {
	side := b.At(m.From).Side
	rank := m.From.Rank
	transit := board.Sq(5, rank)
	if m.To.File < m.From.File {
		transit = board.Sq(3, rank)
	}
	return !Attacks(b, transit, side)
}
