// Package movegen enumerates raw, pseudo-legal moves for each piece kind: eight-direction
// rays for sliders, knight leaps, pawn pushes/captures, and castling candidates. It knows
// nothing about check — a caller-supplied CheckFunc is injected where geometry needs to
// ask "is the side to move in check right now" (see King, below).
package movegen

import "github.com/kallenhart/corvid/pkg/board"

// Direction is one of the eight compass rays a sliding piece can walk.
type Direction struct {
	DF, DR int8
}

var (
	N  = Direction{0, 1}
	NE = Direction{1, 1}
	E  = Direction{1, 0}
	SE = Direction{1, -1}
	S  = Direction{0, -1}
	SW = Direction{-1, -1}
	W  = Direction{-1, 0}
	NW = Direction{-1, 1}
)

// AllDirections are the eight rays, used by the king and queen.
var AllDirections = [8]Direction{N, NE, E, SE, S, SW, W, NW}

// DiagonalDirections are the four bishop rays.
var DiagonalDirections = [4]Direction{NE, SE, SW, NW}

// OrthogonalDirections are the four rook rays.
var OrthogonalDirections = [4]Direction{N, E, S, W}

// Class classifies a from->to transition.
type Class int

const (
	Illegal Class = iota
	Quiet
	Capture
)

// MoveClass is the classification of a from->to transition, with the captured kind (only
// meaningful when Class == Capture) kept alongside it even though most generators below
// only consult Class.
type MoveClass struct {
	Class    Class
	Captured board.Kind
}

// Classify returns Illegal if from is empty, Capture(kind) if the colors at from/to
// differ, Quiet if to is empty.
func Classify(b *board.Board, from, to board.Square) MoveClass {
	if !to.Valid() {
		return MoveClass{Class: Illegal}
	}
	mover := b.At(from)
	if mover.IsEmpty() {
		return MoveClass{Class: Illegal}
	}
	target := b.At(to)
	if target.IsEmpty() {
		return MoveClass{Class: Quiet}
	}
	if target.Side != mover.Side {
		return MoveClass{Class: Capture, Captured: target.Kind}
	}
	return MoveClass{Class: Illegal} // blocked by a piece of the mover's own side
}

// ray walks from sq in direction dir for up to maxLen steps, stopping at the board edge
// or the first occupied square; the occupied square is included only if it is a capture.
func ray(b *board.Board, sq board.Square, dir Direction, maxLen int) []board.Move {
	var out []board.Move
	cur := sq
	for i := 0; i < maxLen; i++ {
		cur = cur.Offset(dir.DF, dir.DR)
		if !cur.Valid() {
			return out
		}
		switch Classify(b, sq, cur).Class {
		case Quiet:
			out = append(out, board.Move{From: sq, To: cur})
		case Capture:
			out = append(out, board.Move{From: sq, To: cur})
			return out
		default:
			return out
		}
	}
	return out
}

func rays(b *board.Board, sq board.Square, dirs []Direction, maxLen int) []board.Move {
	var out []board.Move
	for _, d := range dirs {
		out = append(out, ray(b, sq, d, maxLen)...)
	}
	return out
}
