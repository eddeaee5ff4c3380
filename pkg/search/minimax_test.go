package search_test

import (
	"testing"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimax_FindsMateInOne(t *testing.T) {
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	res := search.Minimax(b, search.Options{MaxDepth: 2})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Sq(0, 7), res.Move.To)
}

func TestMinimax_MateFallingExactlyOnHorizonScoresAsMate(t *testing.T) {
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	res := search.Minimax(b, search.Options{MaxDepth: 1})
	require.True(t, res.HasMove)
	assert.Equal(t, board.Sq(0, 7), res.Move.To)
	assert.Greater(t, res.Score, board.MaxScore-100)
}

func TestMinimax_AgreesWithNegamax(t *testing.T) {
	b, err := board.Parse(board.Initial)
	require.NoError(t, err)

	mm := search.Minimax(b, search.Options{MaxDepth: 2})
	nm := search.Negamax(b, search.Options{MaxDepth: 2, AlphaBeta: false})

	assert.Equal(t, nm.Score, mm.Score*b.Side().Unit())
}

func TestAlgorithmByName(t *testing.T) {
	for _, name := range []string{"minimax", "negamax", "negascout"} {
		algo, ok := search.AlgorithmByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, algo)
	}

	_, ok := search.AlgorithmByName("bogus")
	assert.False(t, ok)
}
