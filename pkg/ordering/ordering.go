// Package ordering reorders a move's legal children before a search visits them, to
// maximize alpha-beta cutoffs.
package ordering

import (
	"container/heap"
	"math/rand"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/eval"
	"github.com/kallenhart/corvid/pkg/legal"
)

// Policy selects how GenerateAll's children are presented to a search node.
type Policy int

const (
	// None preserves generation order.
	None Policy = iota
	// Random uniformly shuffles the children.
	Random
	// Eval sorts children descending by sign * static value, so that the side to move's
	// most promising children come first.
	Eval
)

// Order reorders children in place according to policy and returns it. sign is +1 when
// the current ply maximizes White, -1 otherwise; it is only consulted by Eval. rng is
// only consulted by Random and may be nil, in which case a new source with the fixed seed
// 1 is created for the call, so the shuffle is the same every time.
func Order(policy Policy, children []legal.Child, sign board.Score, rng *rand.Rand) []legal.Child {
	switch policy {
	case Random:
		shuffle(children, rng)
	case Eval:
		sortByEval(children, sign)
	}
	return children
}

func shuffle(children []legal.Child, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	rng.Shuffle(len(children), func(i, j int) {
		children[i], children[j] = children[j], children[i]
	})
}

// sortByEval orders children highest-priority-first using a throwaway max-heap, mirroring
// the heap-based move list the teacher builds its MVV-LVA ordering on top of.
func sortByEval(children []legal.Child, sign board.Score) {
	h := make(childHeap, len(children))
	for i, c := range children {
		h[i] = elm{c: c, priority: sign * eval.Value(c.Board)}
	}
	heap.Init(&h)
	for i := range children {
		children[i] = heap.Pop(&h).(elm).c
	}
}

type elm struct {
	c        legal.Child
	priority board.Score
}

type childHeap []elm

func (h childHeap) Len() int            { return len(h) }
func (h childHeap) Less(i, j int) bool  { return h[i].priority > h[j].priority }
func (h childHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *childHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *childHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
