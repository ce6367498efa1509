package dfa

import "github.com/coreclang/corec/token"

// Result is the outcome of one ReadToken call: the longest accepted
// prefix's kind and length, or (token.Invalid, distance-walked) on
// failure.
type Result struct {
	Kind   token.Kind
	Length int
}

// ReadToken returns the longest prefix of stream accepted by the
// automaton rooted at start, using maximal-munch semantics.
//
// Conceptually this is the backtracking depth-first walk of the spec:
// descend through the first edge whose predicate fires, recording the
// best (longest) accepting state seen along the way, and falling through
// to the default edge only when no ordinary edge fired. Because each
// state tries at most one outgoing path (the first match, or else the
// default), the "walk" never actually needs to backtrack across sibling
// edges, so it is implemented here as a single iterative loop rather
// than literal recursion — same result, no recursion-depth limit on long
// inputs.
//
// If no state ever accepts, Result.Kind is token.Invalid and
// Result.Length is the distance the walker advanced before it had to
// stop; the caller must still advance the stream by at least one
// character to make progress in that case.
func (p *Pool) ReadToken(start State, stream []byte) Result {
	bestKind := token.Invalid
	bestLen := 0
	state := start
	offset := 0
	consumedVirtualEnd := false

	for {
		s := &p.states[state]
		if s.AcceptingKind != token.Invalid {
			bestKind = s.AcceptingKind
			bestLen = offset
		}
		if consumedVirtualEnd {
			break
		}

		atEnd := offset >= len(stream)
		var ch byte
		if !atEnd {
			ch = stream[offset]
		}

		target, matched, zeroWidth := matchEdge(p, s, ch)
		if !matched {
			if s.DefaultEdge < 0 {
				break
			}
			if atEnd {
				// Default edges always consume a character; past the end
				// of the stream there is none left to give them, so stop
				// rather than let an unterminated construct's self-loop
				// absorb the virtual end-of-stream forever.
				break
			}
			target = p.edges[s.DefaultEdge].Target
		}

		state = target
		switch {
		case zeroWidth:
			// End-of-line acceptance is a boundary check, not a
			// consuming transition: the CR/LF/NUL that triggers it
			// belongs to the next token, not this one.
		case atEnd:
			consumedVirtualEnd = true
		default:
			offset++
		}
	}

	if bestKind == token.Invalid {
		bestLen = offset
	}
	return Result{Kind: bestKind, Length: bestLen}
}

// matchEdge returns the target of the first edge of s whose predicate
// fires on ch, trying edges in insertion order (the tie-break rule).
// zeroWidth reports whether the matched edge is an end-of-line check,
// which ReadToken treats as a lookahead rather than a consuming step.
func matchEdge(p *Pool, s *stateRecord, ch byte) (target State, matched, zeroWidth bool) {
	for _, idx := range s.Edges {
		e := &p.edges[idx]
		if e.Predicate.matches(ch, e.Char) {
			return e.Target, true, e.Predicate == PredEndOfLine
		}
	}
	return 0, false, false
}
