package board_test

import (
	"testing"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFEN_RoundTrip(t *testing.T) {
	tests := []string{
		board.Initial,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 0",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 0",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 0",
		"8/P7/8/8/8/8/8/k6K w - - 0 0",
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 0",
	}

	for _, tt := range tests {
		b, err := board.Parse(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, b.FEN())
	}
}

func TestParseFEN_ToleratesExtraTail(t *testing.T) {
	b, err := board.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 12 34")
	require.NoError(t, err)
	assert.Equal(t, board.Initial, b.FEN())
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name, fen string
	}{
		{"short rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 0"},
		{"digit overflow", "rnbqkbnr/pppppppp/8/8/8/9/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
		{"missing king", "rnbqqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQQBNR w KQkq - 0 0"},
		{"two white kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNK w KQkq - 0 0"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 0"},
		{"missing field", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.Parse(tt.fen)
			require.Error(t, err)
			var pe *board.ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestInitialPosition_KingSquares(t *testing.T) {
	b, err := board.Parse(board.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.Sq(4, 0), b.King(board.White))
	assert.Equal(t, board.Sq(4, 7), b.King(board.Black))
}

func TestApply_KingCacheAndCastlingMonotonicity(t *testing.T) {
	b, err := board.Parse("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 0")
	require.NoError(t, err)

	m, err := board.ParseMove("e1g1")
	require.NoError(t, err)

	nb := b.Apply(m)
	assert.Equal(t, board.Sq(6, 0), nb.King(board.White))
	assert.Equal(t, board.Piece{Side: board.White, Kind: board.King}, nb.At(nb.King(board.White)))
	assert.Equal(t, board.Piece{Side: board.White, Kind: board.Rook}, nb.At(board.Sq(5, 0)))
	assert.False(t, nb.Castling().Allows(board.WhiteKingSide))
	assert.False(t, nb.Castling().Allows(board.WhiteQueenSide))

	// Monotonicity: no right regained after any further move.
	m2, err := board.ParseMove("a8b8")
	require.NoError(t, err)
	nb2 := nb.Apply(m2)
	assert.LessOrEqual(t, nb2.Castling(), nb.Castling())
}

func TestApply_PromotionToQueen(t *testing.T) {
	b, err := board.Parse("8/P7/8/8/8/8/8/k6K w - - 0 0")
	require.NoError(t, err)

	m, err := board.ParseMove("a7a8")
	require.NoError(t, err)

	nb := b.Apply(m)
	assert.Equal(t, board.Piece{Side: board.White, Kind: board.Queen}, nb.At(board.Sq(0, 7)))
	assert.True(t, nb.At(board.Sq(0, 6)).IsEmpty())
	assert.Equal(t, "Q7/8/8/8/8/8/8/k6K b - - 0 0", nb.FEN())
}

func TestApply_CapturingRookOnCornerDropsRight(t *testing.T) {
	b, err := board.Parse("r3k3/8/8/8/8/8/8/R3K2R w KQkq - 0 0")
	require.NoError(t, err)

	m, err := board.ParseMove("a1a8")
	require.NoError(t, err)

	nb := b.Apply(m)
	assert.False(t, nb.Castling().Allows(board.BlackQueenSide))
	assert.True(t, nb.Castling().Allows(board.WhiteKingSide))
}

func TestMove_ParseAndStringRoundTrip(t *testing.T) {
	tests := []string{"a2a4", "e7e8q", "h1h8", "a7a8n"}
	for _, tt := range tests {
		m, err := board.ParseMove(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, m.String())
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	tests := []string{"a9", "z1", "i4", "a"}
	for _, tt := range tests {
		_, err := board.ParseSquare(tt)
		assert.Error(t, err)
	}
}
