package search

import (
	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/eval"
	"github.com/kallenhart/corvid/pkg/legal"
	"github.com/kallenhart/corvid/pkg/ordering"
)

// Negascout performs a fixed-depth principal-variation (scout) search: the first child
// at each node is searched with the full window, every later child first with a null
// window and only re-searched with the full window when the null-window probe fails
// high, the window still has room, and depth is close enough to the horizon that a
// re-search is cheap. Pseudo-code:
//
//	function pvs(node, depth, α, β, sign) is
//	    if node has no legal children then
//	        return terminal score (mate magnitude or zero for a draw)
//	    if depth = 0 then
//	        return sign * evaluate(node)
//	    value := −∞
//	    for each child of node do
//	        if child is first child then
//	            score := −pvs(child, depth−1, −β, −α, −sign)
//	        else
//	            score := −pvs(child, depth−1, −α−1, −α, −sign) (* null window *)
//	            if score > α and window not already full and depth close to horizon then
//	                score := −pvs(child, depth−1, −β, −score, −sign) (* full re-search *)
//	        value := max(value, score)
//	        α := max(α, value)
//	        if α ≥ β then
//	            break
//	    return value
func Negascout(b *board.Board, opt Options) Result {
	sign := b.Side().Unit()
	r := &scoutRun{opt: opt}
	score, move, hasMove := r.search(b, opt.MaxDepth, 0, board.MinScore+1, board.MaxScore-1, sign)
	return Result{Score: score, Move: move, HasMove: hasMove, Nodes: r.nodes}
}

type scoutRun struct {
	opt   Options
	nodes uint64
}

func (r *scoutRun) search(b *board.Board, depth, ply int, alpha, beta, sign board.Score) (board.Score, board.Move, bool) {
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

	for i, c := range children {
		var score board.Score
		if i == 0 {
			score = r.search1(c.Board, depth-1, ply+1, beta.Negate(), alpha.Negate(), -sign)
		} else {
			score = r.search1(c.Board, depth-1, ply+1, alpha.Negate()-1, alpha.Negate(), -sign)
			if score > alpha && beta-alpha > 1 && depth <= r.opt.MaxDepth-3 && score < beta {
				score = r.search1(c.Board, depth-1, ply+1, beta.Negate(), score.Negate(), -sign)
			}
		}

		if !hasMove || score > best {
			best = score
			bestMove = c.Move
			hasMove = true
		}
		if ply == 0 && r.opt.Progress != nil {
			r.opt.Progress(c.Move, best, r.nodes)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best, bestMove, hasMove
}

// search1 is search with the sign flipped to the caller's perspective — every call site
// above negates its own alpha/beta and sign going in, then negates the result coming
// back, exactly as the pseudo-code's "-pvs(...)" does.
func (r *scoutRun) search1(b *board.Board, depth, ply int, alpha, beta, sign board.Score) board.Score {
	score, _, _ := r.search(b, depth, ply, alpha, beta, sign)
	return score.Negate()
}
