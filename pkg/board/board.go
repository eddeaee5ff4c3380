// Package board implements an immutable-by-copy chess position: piece placement, side to
// move, castling rights, king-square cache and a memoized static-evaluation slot.
package board

import (
	"fmt"
	"strings"
)

// Initial is the FEN of the standard starting position, with the canonical " - 0 0" tail.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"

// Board is an immutable-by-copy chess position. A Board value is produced by Parse or by
// Apply-ing a move to an existing board; Apply returns a fresh board rather than mutating
// its receiver. There are no back-pointers and no shared mutable graph.
type Board struct {
	grid   [8][8]Piece // grid[rank][file]; rank 0 is White's back rank.
	side   Side
	castle Castling
	king   [NumSides]Square // king square cache per side; kept in sync by Apply.

	evalSet bool
	evalVal Score // memoized static evaluation, cleared on every mutation.
}

// ParseError reports a malformed FEN string.
type ParseError struct {
	FEN string
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.FEN, e.Msg)
}

func parseErrorf(fen, format string, args ...interface{}) error {
	return &ParseError{FEN: fen, Msg: fmt.Sprintf(format, args...)}
}

// Parse reads the first four FEN fields (piece placement, side to move, castling rights,
// en-passant placeholder). Remaining fields are tolerated and ignored.
func Parse(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, parseErrorf(fen, "expected at least 4 fields, got %d", len(fields))
	}

	b := &Board{}

	var kingCount [NumSides]int
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, parseErrorf(fen, "expected 8 ranks, got %d", len(ranks))
	}
	for i, line := range ranks {
		rank := int8(7 - i)
		file := int8(0)
		for _, c := range line {
			switch {
			case c >= '1' && c <= '8':
				width := int8(c - '0')
				if file+width > 8 {
					return nil, parseErrorf(fen, "rank %d: digit %c exceeds remaining width", i+1, c)
				}
				file += width
			default:
				kind, ok := ParseKind(c)
				if !ok {
					return nil, parseErrorf(fen, "rank %d: unexpected character %q", i+1, c)
				}
				if file >= 8 {
					return nil, parseErrorf(fen, "rank %d: does not sum to 8 columns", i+1)
				}
				side := White
				if c >= 'a' && c <= 'z' {
					side = Black
				}
				sq := Sq(file, rank)
				b.set(sq, Piece{Side: side, Kind: kind})
				if kind == King {
					b.king[side] = sq
					kingCount[side]++
				}
				file++
			}
		}
		if file != 8 {
			return nil, parseErrorf(fen, "rank %d: does not sum to 8 columns", i+1)
		}
	}
	if kingCount[White] != 1 || kingCount[Black] != 1 {
		return nil, parseErrorf(fen, "board must have exactly two kings, one per side")
	}

	switch fields[1] {
	case "w", "W":
		b.side = White
	case "b", "B":
		b.side = Black
	default:
		return nil, parseErrorf(fen, "side to move must be one of w,W,b,B, got %q", fields[1])
	}

	b.castle = ParseCastling(fields[2])
	// fields[3] (en-passant) and any further fields are tolerated but not tracked.

	return b, nil
}

// FEN prints the first four fields followed by the literal tail " - 0 0" (en-passant and
// move clocks are not tracked).
func (b *Board) FEN() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		empty := 0
		for file := int8(0); file < 8; file++ {
			p := b.grid[i][file]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteRune(p.Letter())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if i > 0 {
			sb.WriteByte('/')
		}
	}
	fmt.Fprintf(&sb, " %v %v - 0 0", b.side, b.castle)
	return sb.String()
}

func (b *Board) String() string {
	return b.FEN()
}

// At returns the piece occupying sq, or NoPiece if empty or off-board.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.grid[sq.Rank][sq.File]
}

func (b *Board) set(sq Square, p Piece) {
	b.grid[sq.Rank][sq.File] = p
}

// Side returns the side to move.
func (b *Board) Side() Side {
	return b.side
}

// Castling returns the current castling rights.
func (b *Board) Castling() Castling {
	return b.castle
}

// King returns the cached king square for the given side.
func (b *Board) King(side Side) Square {
	return b.king[side]
}

// Apply returns a fresh board with m applied, assuming m is legal. It follows a seven-step
// algorithm: promotion-to-queen, rook slide on castling, castling-rights
// updates (king move, rook move from or capture on an original corner), then flips the
// side to move and clears the evaluation memo.
func (b *Board) Apply(m Move) *Board {
	nb := *b
	nb.evalSet = false

	mover := b.At(m.From)
	captured := b.At(m.To)

	placed := mover
	if mover.Kind == Pawn && IsPromotionRank(mover.Side, m.To.Rank) {
		placed = Piece{Side: mover.Side, Kind: Queen}
	}
	nb.set(m.To, placed)
	nb.set(m.From, NoPiece)

	if mover.Kind == King {
		df := m.To.File - m.From.File
		if df == 2 || df == -2 {
			rank := m.From.Rank
			if df == 2 { // king-side: rook file 7 -> file 5
				nb.set(Sq(5, rank), Piece{Side: mover.Side, Kind: Rook})
				nb.set(Sq(7, rank), NoPiece)
			} else { // queen-side: rook file 0 -> file 3
				nb.set(Sq(3, rank), Piece{Side: mover.Side, Kind: Rook})
				nb.set(Sq(0, rank), NoPiece)
			}
		}
		nb.king[mover.Side] = m.To
		nb.castle = nb.castle.Without(KingSide(mover.Side)).Without(QueenSide(mover.Side))
	}

	if mover.Kind == Rook {
		if right, ok := cornerRight(m.From); ok {
			nb.castle = nb.castle.Without(right)
		}
	}
	if captured.Kind == Rook {
		if right, ok := cornerRight(m.To); ok {
			nb.castle = nb.castle.Without(right)
		}
	}

	nb.side = b.side.Opponent()
	return &nb
}

// IsPromotionRank reports whether rank is the far rank for side (rank 7 for White, rank 0
// for Black) — the rank a pawn reaching it is promoted on.
func IsPromotionRank(side Side, rank int8) bool {
	if side == White {
		return rank == 7
	}
	return rank == 0
}

// cornerRight maps an original rook corner square to the castling right it guards.
func cornerRight(sq Square) (Castling, bool) {
	switch sq {
	case Sq(0, 0):
		return WhiteQueenSide, true
	case Sq(7, 0):
		return WhiteKingSide, true
	case Sq(0, 7):
		return BlackQueenSide, true
	case Sq(7, 7):
		return BlackKingSide, true
	default:
		return 0, false
	}
}

// WithPiece returns a shallow copy of b with p placed at sq. It does not touch side to
// move, castling rights or the king cache — callers asking hypothetical "what if a piece
// stood here" questions (pkg/legal's attack probes) are expected to supply those
// separately if they matter.
func (b *Board) WithPiece(sq Square, p Piece) *Board {
	nb := *b
	nb.evalSet = false
	nb.set(sq, p)
	return &nb
}

// Eval returns the memoized score, if set, and whether it was set.
func (b *Board) Eval() (Score, bool) {
	return b.evalVal, b.evalSet
}

// SetEval stores the memoized score. It is write-once per board: callers (pkg/eval) should
// only call it after Eval reports unset.
func (b *Board) SetEval(v Score) {
	b.evalVal = v
	b.evalSet = true
}
