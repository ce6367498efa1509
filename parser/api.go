package parser

import (
	"github.com/coreclang/corec/ast"
	"github.com/coreclang/corec/token"
)

// RemoveWhitespaceAndComments returns tokens with every Whitespace,
// SingleLineComment, and MultiLineComment token filtered out, preserving
// the relative order of what remains. The parser never sees those kinds
// directly; callers normally run this once, right after lexing, before
// handing the result to Recognize/ParseBlock/ParseExpression.
func RemoveWhitespaceAndComments(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case token.Whitespace, token.SingleLineComment, token.MultiLineComment:
			continue
		}
		out = append(out, t)
	}
	return out
}

// run recovers a *ParsingFailure panicked by a production and returns it
// as a plain error; any other panic value propagates unchanged, since it
// signals a bug in the parser rather than a malformed program.
func run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if pf, ok := r.(*ParsingFailure); ok {
				err = pf
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// Recognize parses tokens as a whole source file and discards the tree,
// reporting only whether it is grammatically valid. tokens must already
// be free of Whitespace/comment tokens (see RemoveWhitespaceAndComments).
func Recognize(g *Grammar, tokens []token.Token, source []byte) error {
	_, err := ParseBlock(g, tokens, source)
	return err
}

// ParseBlock parses tokens as a whole source file (zero or more class,
// function, and var declarations) and fails unless every token is
// consumed.
func ParseBlock(g *Grammar, tokens []token.Token, source []byte) (block *ast.Block, err error) {
	p := New(g, tokens, source)
	err = run(func() {
		block = p.parseBlock()
		if !p.atEnd() {
			panic(p.failUnexpected("end of input", nil))
		}
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

// ParseExpression parses tokens as a single expression and fails unless
// every token is consumed.
func ParseExpression(g *Grammar, tokens []token.Token, source []byte) (expr ast.Expression, err error) {
	p := New(g, tokens, source)
	err = run(func() {
		expr = p.parseExpression()
		if !p.atEnd() {
			panic(p.failUnexpected("end of input", nil))
		}
	})
	if err != nil {
		return nil, err
	}
	return expr, nil
}
