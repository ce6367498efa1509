// Package dfa implements a generic, arena-backed automaton: states and
// predicate-labeled edges that a client builds up by hand (see builder.go)
// and then runs maximal-munch tokenization against (see tokenizer.go). It
// has no knowledge of any particular language's lexical grammar — that
// lives in package lang.
package dfa

import "github.com/coreclang/corec/token"

// Predicate selects which edges fire for a given input byte.
type Predicate int

const (
	// PredExact fires only when the input byte equals Edge.Char.
	PredExact Predicate = iota
	// PredAlpha fires for token.IsAlpha.
	PredAlpha
	// PredDigit fires for token.IsDigit.
	PredDigit
	// PredWhitespace fires for token.IsWhitespace.
	PredWhitespace
	// PredEscaped fires for token.IsEscapedChar.
	PredEscaped
	// PredEndOfLine fires for token.IsEndOfLine.
	PredEndOfLine
)

// matches reports whether p accepts ch, given the exact-match character
// carried by the edge (ignored by every predicate but PredExact).
func (p Predicate) matches(ch, exact byte) bool {
	switch p {
	case PredExact:
		return ch == exact
	case PredAlpha:
		return token.IsAlpha(ch)
	case PredDigit:
		return token.IsDigit(ch)
	case PredWhitespace:
		return token.IsWhitespace(ch)
	case PredEscaped:
		return token.IsEscapedChar(ch)
	case PredEndOfLine:
		return token.IsEndOfLine(ch)
	default:
		return false
	}
}

// Edge is (predicate, simple_char, target_state). simple_char is only
// meaningful when Predicate is PredExact.
type Edge struct {
	Predicate Predicate
	Char      byte
	Target    State
}

// stateRecord is (accepting_kind, outgoing_edges_list, default_edge_opt).
// AcceptingKind of token.Invalid means non-accepting. Edges is a slice of
// indices into the pool's edge arena, in insertion order — that order is
// the tie-break rule during tokenization. DefaultEdge is the index of the
// default edge in the edge arena, or -1 if this state has none.
type stateRecord struct {
	AcceptingKind token.Kind
	Edges         []int
	DefaultEdge   int
}

// State is a stable handle into a Pool's state arena. The zero State (0)
// is the root returned by the first AddState call of a fresh pool, and
// the Root of a Language built by lang.New.
type State int

// Pool is two bounded arenas — a state arena and an edge arena — with
// monotonically growing indices. All states and edges live as long as the
// pool; DeleteStateAndChildren resets both arenas to empty rather than
// supporting individual release (see builder.go).
type Pool struct {
	states   []stateRecord
	edges    []Edge
	maxState int
	maxEdge  int
}

// Default arena sizes. The language DFA built in package lang uses on the
// order of a few dozen states and edges; these bounds are generous enough
// for that while still catching a runaway builder.
const (
	DefaultMaxStates = 4096
	DefaultMaxEdges  = 16384
)

// NewPool allocates a pool with the given arena capacities. A non-positive
// bound is replaced by the package default.
func NewPool(maxStates, maxEdges int) *Pool {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	if maxEdges <= 0 {
		maxEdges = DefaultMaxEdges
	}
	return &Pool{
		states:   make([]stateRecord, 0, 64),
		edges:    make([]Edge, 0, 128),
		maxState: maxStates,
		maxEdge:  maxEdges,
	}
}

// NumStates returns the number of live states in the pool.
func (p *Pool) NumStates() int { return len(p.states) }

// NumEdges returns the number of live edges in the pool.
func (p *Pool) NumEdges() int { return len(p.edges) }

// AcceptingKind returns the token kind a walk accepts by reaching s, or
// token.Invalid if s is non-accepting.
func (p *Pool) AcceptingKind(s State) token.Kind {
	return p.states[s].AcceptingKind
}
