package legal

import (
	"errors"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/movegen"
)

// ErrIllegalMove is a sentinel for callers that need to distinguish "the move text didn't
// parse" from "the move parsed but is not legal here" as an error value. Nothing in this
// module returns it: CheckMove reports illegality through its MoveClass, and pkg/engine
// turns that into the "illegal" token.
var ErrIllegalMove = errors.New("illegal move")

// CheckMove validates an externally supplied move against b: the from square must hold a
// piece of the side to move, the destination must be geometrically reachable for that
// piece (sliders may "see through" up to maxObstacles blocking pieces — 0 gives strict
// correctness, a higher value is meant for UI move-hinting that still wants to rule out
// wildly-illegal destinations), and the mover's own king must not be left in check.
// Pawn moves that land on the promotion rank are always completed as a queen promotion.
// The returned MoveClass carries Illegal for anything that fails those checks, and
// otherwise Quiet or Capture(kind) from movegen.Classify, so a caller applying the move
// can tell what it captured without a second lookup.
func CheckMove(b *board.Board, m board.Move, maxObstacles int) movegen.MoveClass {
	mover := b.At(m.From)
	if mover.IsEmpty() || mover.Side != b.Side() {
		return movegen.MoveClass{Class: movegen.Illegal}
	}
	if !reachable(b, mover, m, maxObstacles) {
		return movegen.MoveClass{Class: movegen.Illegal}
	}

	full := m
	if mover.Kind == board.Pawn && board.IsPromotionRank(mover.Side, m.To.Rank) {
		full.Promotion = board.Queen
	}
	if isCastle(b, full) && !transitSafe(b, full) {
		return movegen.MoveClass{Class: movegen.Illegal}
	}
	child := b.Apply(full)
	if InCheck(child, mover.Side) {
		return movegen.MoveClass{Class: movegen.Illegal}
	}
	return movegen.Classify(b, m.From, m.To)
}

func reachable(b *board.Board, mover board.Piece, m board.Move, maxObstacles int) bool {
	switch mover.Kind {
	case board.Pawn:
		return containsTo(movegen.Pawn(b, m.From), m.To)
	case board.Knight:
		return containsTo(movegen.Knight(b, m.From), m.To)
	case board.King:
		return containsTo(movegen.King(b, m.From, InCheck), m.To)
	case board.Bishop:
		return containsTo(slideReach(b, m.From, movegen.DiagonalDirections[:], movegen.MaxRayLen, maxObstacles), m.To)
	case board.Rook:
		return containsTo(slideReach(b, m.From, movegen.OrthogonalDirections[:], movegen.MaxRayLen, maxObstacles), m.To)
	case board.Queen:
		return containsTo(slideReach(b, m.From, movegen.AllDirections[:], movegen.MaxRayLen, maxObstacles), m.To)
	default:
		return false
	}
}

func containsTo(moves []board.Move, to board.Square) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}

// slideReach walks each direction from, the way movegen's strict ray-walk does, except
// that an occupied square only stops the ray once obstacles seen so far on it exceeds
// maxObstacles. A square still only counts as a reachable destination under the normal
// rule — empty, or occupied by the opponent — obstacle tolerance only lets the ray look
// past it to squares further along the same line.
func slideReach(b *board.Board, from board.Square, dirs []movegen.Direction, maxLen, maxObstacles int) []board.Move {
	mover := b.At(from)
	var out []board.Move
	for _, d := range dirs {
		obstacles := 0
		cur := from
		for i := 0; i < maxLen; i++ {
			cur = cur.Offset(d.DF, d.DR)
			if !cur.Valid() {
				break
			}
			target := b.At(cur)
			if target.IsEmpty() {
				out = append(out, board.Move{From: from, To: cur})
				continue
			}
			if target.Side != mover.Side {
				out = append(out, board.Move{From: from, To: cur})
			}
			obstacles++
			if obstacles > maxObstacles {
				break
			}
		}
	}
	return out
}
