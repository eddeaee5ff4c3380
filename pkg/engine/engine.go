// Package engine composes pkg/board, pkg/legal, pkg/eval, pkg/ordering, pkg/search and
// pkg/game into the library surface an embedding host (a UCI front-end, a WASM binding,
// a terminal driver) is expected to call: FindBestMove, TryMakeMove, CheckEndGame, plus
// Name/Author identification. It implements none of those outer drivers itself.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/kallenhart/corvid/pkg/board"
	"github.com/kallenhart/corvid/pkg/game"
	"github.com/kallenhart/corvid/pkg/legal"
	"github.com/kallenhart/corvid/pkg/movegen"
	"github.com/kallenhart/corvid/pkg/ordering"
	"github.com/kallenhart/corvid/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are search configuration options, corresponding directly to the
// search_algo/move_ordering/max_depth/alpha_beta configuration keys an embedding host
// exposes to its user.
type Options struct {
	// SearchAlgo selects the algorithm: "minimax", "negamax" or "negascout".
	SearchAlgo string
	// MoveOrdering selects the child ordering policy: "none", "random" or "eval".
	MoveOrdering string
	// MaxDepth is the number of plies searched from the root.
	MaxDepth int
	// AlphaBeta enables pruning for "negamax" (ignored by the other two algorithms,
	// which either always prune or never do).
	AlphaBeta bool
}

func (o Options) String() string {
	return fmt.Sprintf("{algo=%v, ordering=%v, depth=%v, alpha_beta=%v}", o.SearchAlgo, o.MoveOrdering, o.MaxDepth, o.AlphaBeta)
}

// DefaultOptions is used by FindBestMove and by New when no WithOptions is given.
var DefaultOptions = Options{
	SearchAlgo:   "negamax",
	MoveOrdering: "eval",
	MaxDepth:     4,
	AlphaBeta:    true,
}

// Engine holds identification and default search configuration. It is safe for
// concurrent use; its methods take a position by FEN on every call rather than holding
// mutable board state, so there is no per-game session to guard beyond opts itself.
type Engine struct {
	name, author string
	opts         Options
	mu           sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the default search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine identified by name and author.
func New(name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, opts: DefaultOptions}
	for _, fn := range opts {
		fn(e)
	}

	logw.Infof(context.Background(), "Initialized engine: %v, options=%v", e.Name(), e.Options())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Options returns the engine's current default search options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// SetOptions replaces the engine's default search options.
func (e *Engine) SetOptions(opts Options) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts = opts
}

func (e *Engine) searchOptions() search.Options {
	opts := e.Options()
	return search.Options{
		MaxDepth:  opts.MaxDepth,
		AlphaBeta: opts.AlphaBeta,
		Ordering:  policyByName(opts.MoveOrdering),
	}
}

func policyByName(name string) ordering.Policy {
	switch name {
	case "random":
		return ordering.Random
	case "eval":
		return ordering.Eval
	default:
		return ordering.None
	}
}

// FindBestMove parses fen, searches with the engine's default options, applies the best
// move found and re-emits the resulting position as FEN.
func (e *Engine) FindBestMove(fen string) (string, error) {
	ctx := context.Background()

	b, err := board.Parse(fen)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", fen, err)
	}

	algo, ok := search.AlgorithmByName(e.Options().SearchAlgo)
	if !ok {
		algo = search.Negamax
	}

	res := algo(b, e.searchOptions())
	if !res.HasMove {
		logw.Infof(ctx, "FindBestMove %v: no legal move", fen)
		return "", fmt.Errorf("no legal move available in %q", fen)
	}

	next := b.Apply(res.Move)
	logw.Infof(ctx, "FindBestMove %v: %v (score=%v, nodes=%v) -> %v", fen, res.Move, res.Score, res.Nodes, next)
	return next.FEN(), nil
}

// MoveOutcomeKind classifies the result of TryMakeMove before it collapses into the
// plain string the library surface returns.
type MoveOutcomeKind int

const (
	// MoveApplied means the move was legal and applied; MoveOutcome.FEN holds the result.
	MoveApplied MoveOutcomeKind = iota
	// MoveIllegal means from/to parsed but the move itself is not legal in the position.
	MoveIllegal
	// MoveIllegalInput means from or to did not even parse as a square.
	MoveIllegalInput
)

// MoveOutcome is TryMakeMove's typed result; its String method produces exactly the
// token values ("illegal", "illegal_input") or FEN the library surface contract expects.
type MoveOutcome struct {
	FEN  string
	Kind MoveOutcomeKind
}

func (o MoveOutcome) String() string {
	switch o.Kind {
	case MoveIllegal:
		return "illegal"
	case MoveIllegalInput:
		return "illegal_input"
	default:
		return o.FEN
	}
}

// TryMakeMove parses fen, validates the move from -> to (always queening a pawn that
// reaches the back rank; under-promotion cannot be requested through this surface) and,
// if legal, applies it and returns the resulting FEN. The caller only ever sees the
// three tokens from MoveOutcome.String(): a FEN, "illegal", or "illegal_input".
func (e *Engine) TryMakeMove(fen, from, to string) (string, error) {
	ctx := context.Background()

	b, err := board.Parse(fen)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", fen, err)
	}

	fromSq, err := board.ParseSquare(from)
	if err != nil {
		return MoveOutcome{Kind: MoveIllegalInput}.String(), nil
	}
	toSq, err := board.ParseSquare(to)
	if err != nil {
		return MoveOutcome{Kind: MoveIllegalInput}.String(), nil
	}

	m := board.Move{From: fromSq, To: toSq}
	class := legal.CheckMove(b, m, 0)
	if class.Class == movegen.Illegal {
		logw.Infof(ctx, "TryMakeMove %v %v%v: illegal", fen, from, to)
		return MoveOutcome{Kind: MoveIllegal}.String(), nil
	}

	next := b.Apply(m)
	if class.Class == movegen.Capture {
		logw.Infof(ctx, "TryMakeMove %v %v%v: captures %v, -> %v", fen, from, to, class.Captured, next)
	} else {
		logw.Infof(ctx, "TryMakeMove %v %v%v: %v", fen, from, to, next)
	}
	return MoveOutcome{FEN: next.FEN(), Kind: MoveApplied}.String(), nil
}

// CheckEndGame classifies fen's position as "none" (the game continues), "draw"
// (stalemate) or "checkmate white"/"checkmate black" naming the side with no legal
// moves whose king is attacked.
func (e *Engine) CheckEndGame(fen string) (string, error) {
	b, err := board.Parse(fen)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", fen, err)
	}

	switch game.Classify(b) {
	case game.InProgress:
		return "none", nil
	case game.Stalemate:
		return "draw", nil
	case game.Checkmate:
		if b.Side() == board.White {
			return "checkmate white", nil
		}
		return "checkmate black", nil
	default:
		return "", fmt.Errorf("unreachable game state for %q", fen)
	}
}
