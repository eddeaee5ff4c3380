package search

import (
	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/eval"
	"github.com/kallenhart/corvid/pkg/legal"
	"github.com/kallenhart/corvid/pkg/ordering"
)

// Negamax performs a fixed-depth negamax search, optionally pruned with alpha-beta.
// Pseudo-code:
//
//	function negamax(node, depth, α, β, sign) is
//	    if node has no legal children then
//	        return terminal score (mate magnitude or zero for a draw)
//	    if depth = 0 then
//	        return sign * evaluate(node)
//	    value := −∞
//	    for each child of node do
//	        score := −negamax(child, depth−1, −β, −α, −sign)
//	        value := max(value, score)
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
func Negamax(b *board.Board, opt Options) Result {
	sign := b.Side().Unit()
	r := &negamaxRun{opt: opt}
	score, move, hasMove := r.search(b, opt.MaxDepth, 0, board.MinScore+1, board.MaxScore-1, sign)
	return Result{Score: score, Move: move, HasMove: hasMove, Nodes: r.nodes}
}

type negamaxRun struct {
	opt   Options
	nodes uint64
}

func (r *negamaxRun) search(b *board.Board, depth, ply int, alpha, beta, sign board.Score) (board.Score, board.Move, bool) {
	r.nodes++

	children := legal.GenerateAll(b)
	if len(children) == 0 {
		return terminalScore(b, ply), board.Move{}, false
	}
	if depth == 0 {
		return sign * eval.Value(b), board.Move{}, false
	}
	ordering.Order(r.opt.Ordering, children, sign, r.opt.Rand)

	best := board.MinScore
	var bestMove board.Move
	hasMove := false

	for _, c := range children {
		score, _, _ := r.search(c.Board, depth-1, ply+1, beta.Negate(), alpha.Negate(), -sign)
		score = score.Negate()

		if !hasMove || score > best {
			best = score
			bestMove = c.Move
			hasMove = true
		}
		if ply == 0 && r.opt.Progress != nil {
			r.opt.Progress(c.Move, best, r.nodes)
		}

		if r.opt.AlphaBeta {
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
	}

	return best, bestMove, hasMove
}
