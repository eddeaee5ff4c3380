package search_test

import (
	"testing"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegamax_FindsMateInOne(t *testing.T) {
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	res := search.Negamax(b, search.Options{MaxDepth: 2, AlphaBeta: true})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Move{From: board.Sq(0, 0), To: board.Sq(0, 7)}, res.Move)
	assert.Greater(t, res.Score, board.MaxScore-100)
}

func TestNegamax_MateFallingExactlyOnHorizonScoresAsMate(t *testing.T) {
	// MaxDepth: 1 puts the mated position (after White's only reasonable move) right at
	// the depth-0 leaf: the leaf must still check for terminal children before falling
	// back to the static evaluator, or this scores as a merely-ahead-on-material middle
	// game instead of a forced mate.
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	res := search.Negamax(b, search.Options{MaxDepth: 1, AlphaBeta: true})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Move{From: board.Sq(0, 0), To: board.Sq(0, 7)}, res.Move)
	assert.Greater(t, res.Score, board.MaxScore-100)
}

func TestNegamax_AlphaBetaAgreesWithPlainNegamax(t *testing.T) {
	b, err := board.Parse(board.Initial)
	require.NoError(t, err)

	plain := search.Negamax(b, search.Options{MaxDepth: 2, AlphaBeta: false})
	pruned := search.Negamax(b, search.Options{MaxDepth: 2, AlphaBeta: true})

	assert.Equal(t, plain.Score, pruned.Score)
	assert.LessOrEqual(t, pruned.Nodes, plain.Nodes)
}

func TestNegascout_FindsMateInOne(t *testing.T) {
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	res := search.Negascout(b, search.Options{MaxDepth: 2})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Move{From: board.Sq(0, 0), To: board.Sq(0, 7)}, res.Move)
}

func TestNegascout_MateFallingExactlyOnHorizonScoresAsMate(t *testing.T) {
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	res := search.Negascout(b, search.Options{MaxDepth: 1})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Move{From: board.Sq(0, 0), To: board.Sq(0, 7)}, res.Move)
	assert.Greater(t, res.Score, board.MaxScore-100)
}

func TestNegamax_BlackToMovePrefersBlackMaterialGain(t *testing.T) {
	// Black to move can capture a hanging white rook with its own rook.
	b, err := board.Parse("4k3/8/8/8/8/8/r7/R3K3 b - - 0 0")
	require.NoError(t, err)

	res := search.Negamax(b, search.Options{MaxDepth: 2, AlphaBeta: true})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Sq(0, 0), res.Move.To)
}

func TestNegamax_NoLegalMovesReportsNoMove(t *testing.T) {
	// Stalemate: side to move has nothing to do.
	b, err := board.Parse("k7/8/1Q6/8/8/8/8/6K1 b - - 0 0")
	require.NoError(t, err)

	res := search.Negamax(b, search.Options{MaxDepth: 2, AlphaBeta: true})
	assert.False(t, res.HasMove)
	assert.Equal(t, board.Score(0), res.Score)
}
