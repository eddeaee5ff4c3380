package eval_test

import (
	"testing"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_InitialPositionIsBalanced(t *testing.T) {
	b, err := board.Parse(board.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.Score(0), eval.Value(b))
}

func TestValue_MaterialAdvantageIsPositiveForWhite(t *testing.T) {
	b, err := board.Parse("4k3/8/8/8/8/8/8/4K2Q w - - 0 0")
	require.NoError(t, err)

	v := eval.Value(b)
	assert.Greater(t, v, board.Score(0))
}

func TestValue_IsMemoized(t *testing.T) {
	b, err := board.Parse("4k3/8/8/8/8/8/8/4K2Q w - - 0 0")
	require.NoError(t, err)

	first := eval.Value(b)
	_, ok := b.Eval()
	require.True(t, ok)

	second := eval.Value(b)
	assert.Equal(t, first, second)
}

func TestValue_SymmetricPositionIsZero(t *testing.T) {
	b, err := board.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 0")
	require.NoError(t, err)

	assert.Equal(t, board.Score(0), eval.Value(b))
}

func TestNominalValue_KingOutweighsEveryPiece(t *testing.T) {
	assert.Greater(t, eval.NominalValue(board.King), eval.NominalValue(board.Queen))
}
