package lang

import (
	"fmt"

	"github.com/coreclang/corec/dfa"
	"github.com/coreclang/corec/token"
)

// Language is a constructed lexical automaton plus the keyword map that
// post-filters its Identifier tokens. It is immutable after New returns:
// tokenizing never mutates the pool, so a *Language is safe for
// concurrent use by multiple readers (see dfa.Pool and
// dfa.Pool.DeleteStateAndChildren for the construction/teardown
// discipline this relies on).
type Language struct {
	Pool     *dfa.Pool
	Root     dfa.State
	Symbols  []string
	Keywords []string

	keywordKinds map[string]token.Kind
}

// New builds the language DFA from the given symbol and keyword tables
// (see Symbols and Keywords for the shape they must have) and returns the
// ready-to-use Language. Equivalent to the spec's create_language_dfa,
// generalized to take external tables rather than hard-coding them.
func New(symbols, keywords []string) (*Language, error) {
	pool := dfa.NewPool(0, 0)
	root, err := pool.AddState(token.Invalid)
	if err != nil {
		return nil, fmt.Errorf("lang: allocating root state: %w", err)
	}

	prefixState, err := buildSymbolTrie(pool, root, symbols)
	if err != nil {
		return nil, err
	}
	if err := buildWhitespace(pool, root); err != nil {
		return nil, err
	}
	if err := buildIdentifier(pool, root); err != nil {
		return nil, err
	}
	intState, err := buildIntegerAndFloat(pool, root)
	if err != nil {
		return nil, err
	}
	_ = intState
	if err := buildStringLiteral(pool, root); err != nil {
		return nil, err
	}
	if err := buildCharacterLiteral(pool, root); err != nil {
		return nil, err
	}

	divideState, ok := prefixState["/"]
	if !ok {
		return nil, fmt.Errorf("lang: symbol table has no %q entry, required for comment sub-automata", "/")
	}
	if err := buildComments(pool, divideState); err != nil {
		return nil, err
	}

	keywordKinds := make(map[string]token.Kind, len(keywords))
	for i, kw := range keywords {
		keywordKinds[kw] = token.KeywordStart + 1 + token.Kind(i)
	}

	return &Language{
		Pool:         pool,
		Root:         root,
		Symbols:      symbols,
		Keywords:     keywords,
		keywordKinds: keywordKinds,
	}, nil
}

// symbolKind returns the token kind for the i'th entry of the symbol
// table.
func symbolKind(i int) token.Kind {
	return token.SymbolStart + 1 + token.Kind(i)
}

// buildSymbolTrie implements spec §4.E step 1: for each length L from 1
// up, chain each symbol of that length off the state reached by its
// length-(L-1) prefix. Returns the prefix->state map so callers (the
// comment sub-automata) can locate a specific symbol's accepting state,
// e.g. "/" for Divide.
func buildSymbolTrie(pool *dfa.Pool, root dfa.State, symbols []string) (map[string]dfa.State, error) {
	prefixState := map[string]dfa.State{"": root}

	maxLen := 0
	for _, s := range symbols {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}

	for l := 1; l <= maxLen; l++ {
		for i, s := range symbols {
			if len(s) != l {
				continue
			}
			from, err := ensurePrefixState(pool, prefixState, s[:l-1])
			if err != nil {
				return nil, fmt.Errorf("lang: building symbol trie: %w", err)
			}
			st, err := pool.AddState(symbolKind(i))
			if err != nil {
				return nil, fmt.Errorf("lang: building symbol trie: %w", err)
			}
			if err := pool.AddEdge(from, st, s[l-1]); err != nil {
				return nil, fmt.Errorf("lang: building symbol trie: %w", err)
			}
			prefixState[s] = st
		}
	}
	return prefixState, nil
}

// ensurePrefixState returns the trie state reached by prefix, building any
// missing intermediate states along the way. Most prefixes are themselves
// an entry of the symbol table and already present by the time a longer
// symbol needs them (lengths are processed shortest first), but a prefix
// like "|" of "||" need not be a symbol in its own right — it still needs
// a (non-accepting) state to chain the longer symbol off of.
func ensurePrefixState(pool *dfa.Pool, prefixState map[string]dfa.State, prefix string) (dfa.State, error) {
	if st, ok := prefixState[prefix]; ok {
		return st, nil
	}
	parent, err := ensurePrefixState(pool, prefixState, prefix[:len(prefix)-1])
	if err != nil {
		return 0, err
	}
	st, err := pool.AddState(token.Invalid)
	if err != nil {
		return 0, err
	}
	if err := pool.AddEdge(parent, st, prefix[len(prefix)-1]); err != nil {
		return 0, err
	}
	prefixState[prefix] = st
	return st, nil
}

// buildWhitespace implements spec §4.E step 2.
func buildWhitespace(pool *dfa.Pool, root dfa.State) error {
	ws, err := pool.AddState(token.Whitespace)
	if err != nil {
		return err
	}
	if err := pool.AddEdgeWithPredicate(root, ws, dfa.PredWhitespace); err != nil {
		return err
	}
	return pool.AddEdgeWithPredicate(ws, ws, dfa.PredWhitespace)
}

// buildIdentifier implements spec §4.E step 3.
func buildIdentifier(pool *dfa.Pool, root dfa.State) error {
	id, err := pool.AddState(token.Identifier)
	if err != nil {
		return err
	}
	if err := pool.AddEdgeWithPredicate(root, id, dfa.PredAlpha); err != nil {
		return err
	}
	if err := pool.AddEdge(root, id, '_'); err != nil {
		return err
	}
	if err := pool.AddEdgeWithPredicate(id, id, dfa.PredAlpha); err != nil {
		return err
	}
	if err := pool.AddEdgeWithPredicate(id, id, dfa.PredDigit); err != nil {
		return err
	}
	return pool.AddEdge(id, id, '_')
}

// buildIntegerAndFloat implements spec §4.E steps 4-5. Returns the
// integer state (unused by callers today, kept for symmetry with the
// other build* helpers and possible future reuse).
func buildIntegerAndFloat(pool *dfa.Pool, root dfa.State) (dfa.State, error) {
	intState, err := pool.AddState(token.IntegerLiteral)
	if err != nil {
		return 0, err
	}
	if err := pool.AddEdgeWithPredicate(root, intState, dfa.PredDigit); err != nil {
		return 0, err
	}
	if err := pool.AddEdgeWithPredicate(intState, intState, dfa.PredDigit); err != nil {
		return 0, err
	}

	floatDot, err := pool.AddState(token.Invalid)
	if err != nil {
		return 0, err
	}
	if err := pool.AddEdge(intState, floatDot, '.'); err != nil {
		return 0, err
	}

	floatState, err := pool.AddState(token.FloatLiteral)
	if err != nil {
		return 0, err
	}
	if err := pool.AddEdgeWithPredicate(floatDot, floatState, dfa.PredDigit); err != nil {
		return 0, err
	}
	if err := pool.AddEdgeWithPredicate(floatState, floatState, dfa.PredDigit); err != nil {
		return 0, err
	}
	for _, ch := range []byte{'e', '+', '-'} {
		if err := pool.AddEdge(floatState, floatState, ch); err != nil {
			return 0, err
		}
	}

	floatEnd, err := pool.AddState(token.FloatLiteral)
	if err != nil {
		return 0, err
	}
	if err := pool.AddEdge(floatState, floatEnd, 'f'); err != nil {
		return 0, err
	}

	return intState, nil
}

// buildStringLiteral implements spec §4.E step 6.
func buildStringLiteral(pool *dfa.Pool, root dfa.State) error {
	return buildQuotedLiteral(pool, root, '"', token.StringLiteral)
}

// buildCharacterLiteral implements spec §4.E step 7, symmetric to
// buildStringLiteral with '\'' quotes.
func buildCharacterLiteral(pool *dfa.Pool, root dfa.State) error {
	return buildQuotedLiteral(pool, root, '\'', token.CharacterLiteral)
}

func buildQuotedLiteral(pool *dfa.Pool, root dfa.State, quote byte, kind token.Kind) error {
	start, err := pool.AddState(token.Invalid)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(root, start, quote); err != nil {
		return err
	}

	closed, err := pool.AddState(kind)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(start, closed, quote); err != nil {
		return err
	}

	escaped, err := pool.AddState(token.Invalid)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(start, escaped, '\\'); err != nil {
		return err
	}
	if err := pool.AddEdgeWithPredicate(escaped, start, dfa.PredEscaped); err != nil {
		return err
	}

	return pool.AddDefaultEdge(start, start)
}

// buildComments implements spec §4.E steps 8-9, hung off the accepting
// state for the Divide ("/") symbol.
func buildComments(pool *dfa.Pool, divide dfa.State) error {
	mlcStart, err := pool.AddState(token.Invalid)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(divide, mlcStart, '*'); err != nil {
		return err
	}
	if err := pool.AddDefaultEdge(mlcStart, mlcStart); err != nil {
		return err
	}

	mlcStar, err := pool.AddState(token.Invalid)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(mlcStart, mlcStar, '*'); err != nil {
		return err
	}

	mlcEnd, err := pool.AddState(token.MultiLineComment)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(mlcStar, mlcEnd, '/'); err != nil {
		return err
	}
	if err := pool.AddDefaultEdge(mlcStar, mlcStart); err != nil {
		return err
	}

	slcStart, err := pool.AddState(token.Invalid)
	if err != nil {
		return err
	}
	if err := pool.AddEdge(divide, slcStart, '/'); err != nil {
		return err
	}

	slcEnd, err := pool.AddState(token.SingleLineComment)
	if err != nil {
		return err
	}
	if err := pool.AddEdgeWithPredicate(slcStart, slcEnd, dfa.PredEndOfLine); err != nil {
		return err
	}
	return pool.AddDefaultEdge(slcStart, slcStart)
}

// ReadToken tokenizes one token from the front of stream and applies the
// keyword post-filter: an Identifier token whose text matches an entry of
// the keyword table has its kind overwritten with that keyword's kind.
// Equivalent to the spec's read_language_token.
func (l *Language) ReadToken(stream []byte) dfa.Result {
	res := l.Pool.ReadToken(l.Root, stream)
	if res.Kind == token.Identifier {
		if kw, ok := l.keywordKinds[string(stream[:res.Length])]; ok {
			res.Kind = kw
		}
	}
	return res
}
