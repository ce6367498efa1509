package dfa

import (
	"errors"

	"github.com/coreclang/corec/token"
)

// ErrCapacityExceeded is returned by AddState/AddEdge when the relevant
// arena is full. Builder errors halt construction immediately — callers
// are expected to treat this as fatal, not retry.
var ErrCapacityExceeded = errors.New("dfa: builder capacity exceeded")

// ErrDuplicateDefaultEdge is returned by AddDefaultEdge when the from
// state already carries a default edge. No state may have more than one.
var ErrDuplicateDefaultEdge = errors.New("dfa: state already has a default edge")

// AddState allocates a new state in the state arena. The state is
// accepting when acceptingKind is non-zero (token.Invalid means
// non-accepting).
func (p *Pool) AddState(acceptingKind token.Kind) (State, error) {
	if len(p.states) >= p.maxState {
		return 0, ErrCapacityExceeded
	}
	p.states = append(p.states, stateRecord{
		AcceptingKind: acceptingKind,
		DefaultEdge:   -1,
	})
	return State(len(p.states) - 1), nil
}

// AddEdge appends a simple exact-char edge from -> to on ch. Edges are
// tried in insertion order during tokenization, so call order determines
// the tie-break rule when two edges could both match a character (two
// exact-char edges on the same byte, or a class predicate edge added
// alongside one — see AddEdgeWithPredicate). AddEdge does not reject a
// duplicate byte.
func (p *Pool) AddEdge(from, to State, ch byte) error {
	return p.addEdge(from, to, PredExact, ch)
}

// AddDefaultEdge sets from's default edge: the fall-through taken when no
// ordinary edge's predicate fires at the current character. Fails if from
// already has one.
func (p *Pool) AddDefaultEdge(from, to State) error {
	if p.states[from].DefaultEdge != -1 {
		return ErrDuplicateDefaultEdge
	}
	if len(p.edges) >= p.maxEdge {
		return ErrCapacityExceeded
	}
	p.edges = append(p.edges, Edge{Predicate: PredExact, Target: to})
	idx := len(p.edges) - 1
	p.states[from].DefaultEdge = idx
	return nil
}

// AddEdgeWithPredicate attaches a class-predicate edge (alpha, digit,
// whitespace, escaped-char, end-of-line) from -> to. It is the mechanism
// package lang uses to build the language DFA's whitespace/identifier/
// literal sub-automata; ordinary clients of the builder only need
// AddEdge and AddDefaultEdge.
func (p *Pool) AddEdgeWithPredicate(from, to State, pred Predicate) error {
	return p.addEdge(from, to, pred, 0)
}

func (p *Pool) addEdge(from, to State, pred Predicate, ch byte) error {
	if len(p.edges) >= p.maxEdge {
		return ErrCapacityExceeded
	}
	p.edges = append(p.edges, Edge{Predicate: pred, Char: ch, Target: to})
	idx := len(p.edges) - 1
	p.states[from].Edges = append(p.states[from].Edges, idx)
	return nil
}

// DeleteStateAndChildren resets the whole pool — both arenas go back to
// empty. This is the only supported teardown; individual state/edge
// release is not implemented because nothing in this design ever needs
// it. The postcondition is that the next AddState call returns the same
// handle root previously had (State(0), if root was the pool's first
// state).
func (p *Pool) DeleteStateAndChildren(root State) {
	p.states = p.states[:0]
	p.edges = p.edges[:0]
}
