package movegen

import "github.com/kallenhart/corvid/pkg/board"

// MaxRayLen is the longest a slider ray can be on an 8x8 board.
const MaxRayLen = 7

// Bishop returns the four diagonal rays.
func Bishop(b *board.Board, sq board.Square) []board.Move {
	return rays(b, sq, DiagonalDirections[:], MaxRayLen)
}

// Rook returns the four orthogonal rays.
func Rook(b *board.Board, sq board.Square) []board.Move {
	return rays(b, sq, OrthogonalDirections[:], MaxRayLen)
}

// Queen returns the union of the bishop and rook rays.
func Queen(b *board.Board, sq board.Square) []board.Move {
	return rays(b, sq, AllDirections[:], MaxRayLen)
}
