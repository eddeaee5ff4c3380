package search

import (
	"sync"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

// Progress is one root-level update: the search depth (the fixed Options.MaxDepth), the
// move currently being considered, the best score found among root moves examined so
// far, and the node count so far.
type Progress struct {
	Depth int
	Move  board.Move
	Score board.Score
	Nodes uint64
}

// Algorithm is the shared shape of Negamax and Negascout.
type Algorithm func(b *board.Board, opt Options) Result

// Launch runs algo on b in a background goroutine and returns a Handle plus a channel of
// root-level progress. The channel is closed once the search completes. Sends are
// non-blocking drain-then-send: a slow or absent receiver only ever sees the latest
// progress, never blocks the search.
//
// The search is not internally cancellable: it does not poll for a quit signal mid
// recursion (see the package doc). Halt only stops the Handle from trusting or
// forwarding anything the goroutine produces after the call; the goroutine itself runs
// to completion in the background and its result, if any, is simply discarded.
func Launch(algo Algorithm, b *board.Board, opt Options) (*Handle, <-chan Progress) {
	out := make(chan Progress, 1)
	h := &Handle{init: iox.NewAsyncCloser(), quit: iox.NewAsyncCloser()}

	var bestMove board.Move
	var bestScore board.Score
	reported := false

	opt.Progress = func(m board.Move, score board.Score, nodes uint64) {
		if h.quit.IsClosed() {
			return
		}
		p := Progress{Depth: opt.MaxDepth, Move: m, Score: score, Nodes: nodes}

		// The reported best score only changes when the move just searched became the
		// new best root move.
		if !reported || score != bestScore {
			bestMove = m
		}
		reported, bestScore = true, score

		h.mu.Lock()
		h.last = Progress{Depth: opt.MaxDepth, Move: bestMove, Score: score, Nodes: nodes}
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- p
		h.init.Close()
	}

	go func() {
		defer h.init.Close()
		defer close(out)

		result := algo(b, opt)

		h.mu.Lock()
		h.final = result
		h.done = true
		h.mu.Unlock()
	}()

	return h, out
}

// Handle manages one launched search.
type Handle struct {
	init, quit iox.AsyncCloser
	halted     atomic.Bool

	mu    sync.Mutex
	last  Progress // latest report, with Move set to the best root move so far
	final Result
	done  bool
}

// Halt stops the Handle from relying on anything further from the search and returns
// its best known result: the final Result if the search had already completed, else the
// best root move and score among the root-level progress reported so far. Idempotent.
func (h *Handle) Halt() Result {
	<-h.init.Closed()
	if h.halted.CAS(false, true) {
		h.quit.Close()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done {
		return h.final
	}
	return Result{Score: h.last.Score, Move: h.last.Move, HasMove: true, Nodes: h.last.Nodes}
}
