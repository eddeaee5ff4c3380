package board

// Kind represents a chess piece kind (King, Pawn, etc), with no side. Closed set. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// ParseKind parses a FEN-style piece letter, ignoring case.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a (Side, Kind) pair occupying a square. Small and copyable. The zero value is
// the empty square marker, NoPiece.
type Piece struct {
	Side Side
	Kind Kind
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter renders the piece in FEN notation: uppercase for White, lowercase for Black, and
// a single space for an empty square.
func (p Piece) Letter() rune {
	r := []rune(p.Kind.String())[0]
	if p.Side == White {
		r = toUpper(r)
	}
	return r
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.Letter())
}
