package search_test

import (
	"testing"
	"time"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch_ReportsProgressAndCompletes(t *testing.T) {
	b, err := board.Parse("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 0")
	require.NoError(t, err)

	h, out := search.Launch(search.Negamax, b, search.Options{MaxDepth: 2, AlphaBeta: true})

	var last search.Progress
	for p := range out {
		last = p
	}
	// The last report names the last root move searched, in generation order the
	// king's step from g1 to f2; the mating rook move is the final result below.
	assert.Equal(t, board.Sq(5, 1), last.Move.To)

	res := h.Halt()
	require.True(t, res.HasMove)
	assert.Equal(t, board.Sq(0, 7), res.Move.To)
}

func TestLaunch_HaltIsIdempotent(t *testing.T) {
	b, err := board.Parse(board.Initial)
	require.NoError(t, err)

	h, out := search.Launch(search.Negamax, b, search.Options{MaxDepth: 2, AlphaBeta: true})
	for range out {
		// drain
	}

	first := h.Halt()
	second := h.Halt()
	assert.Equal(t, first, second)
}

func TestLaunch_ChannelClosesWithinReasonableTime(t *testing.T) {
	b, err := board.Parse(board.Initial)
	require.NoError(t, err)

	_, out := search.Launch(search.Negamax, b, search.Options{MaxDepth: 2, AlphaBeta: true})

	select {
	case <-closedWhenDrained(out):
	case <-time.After(5 * time.Second):
		t.Fatal("progress channel did not close")
	}
}

func closedWhenDrained(out <-chan search.Progress) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for range out {
		}
		close(done)
	}()
	return done
}
