package search

import (
	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/eval"
	"github.com/kallenhart/corvid/pkg/legal"
	"github.com/kallenhart/corvid/pkg/ordering"
)

// Minimax implements naive minimax search with an explicit maximizing/minimizing
// player, kept distinct from Negamax for comparison and validation. Pseudo-code:
//
//	function minimax(node, depth, maximizingPlayer) is
//	    if node is terminal then
//	        return terminal score (mate magnitude or zero for a draw)
//	    if depth = 0 then
//	        return the heuristic value of node
//	    if maximizingPlayer then
//	        value := −∞
//	        for each child of node do
//	            value := max(value, minimax(child, depth−1, FALSE))
//	        return value
//	    else
//	        value := +∞
//	        for each child of node do
//	            value := min(value, minimax(child, depth−1, TRUE))
//	        return value
//
// Minimax does not honor Options.AlphaBeta; it always searches the full tree, so it
// serves as a slow, obviously-correct baseline to check Negamax's score against.
func Minimax(b *board.Board, opt Options) Result {
	maximizing := b.Side() == board.White
	r := &minimaxRun{opt: opt}
	score, move, hasMove := r.search(b, opt.MaxDepth, 0, maximizing)
	return Result{Score: score, Move: move, HasMove: hasMove, Nodes: r.nodes}
}

type minimaxRun struct {
	opt   Options
	nodes uint64
}

func (r *minimaxRun) search(b *board.Board, depth, ply int, maximizing bool) (board.Score, board.Move, bool) {
	r.nodes++

	sign := board.Score(1)
	if !maximizing {
		sign = -1
	}

	children := legal.GenerateAll(b)
	if len(children) == 0 {
		return sign * terminalScore(b, ply), board.Move{}, false
	}
	if depth == 0 {
		return eval.Value(b), board.Move{}, false
	}
	ordering.Order(r.opt.Ordering, children, sign, r.opt.Rand)

	var best board.Score
	var bestMove board.Move
	hasMove := false

	for _, c := range children {
		score, _, _ := r.search(c.Board, depth-1, ply+1, !maximizing)

		better := !hasMove
		if hasMove {
			if maximizing {
				better = score > best
			} else {
				better = score < best
			}
		}
		if better {
			best = score
			bestMove = c.Move
			hasMove = true
		}
		if ply == 0 && r.opt.Progress != nil {
			r.opt.Progress(c.Move, best, r.nodes)
		}
	}

	return best, bestMove, hasMove
}
