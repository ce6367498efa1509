// Package parser turns a token stream into a syntax tree: a hand-written
// recursive-descent parser over the grammar in package ast, built on top
// of package token and using a Grammar to resolve lexeme spellings into
// concrete token kinds for whatever language definition is active.
package parser

import (
	"github.com/coreclang/corec/token"
)

// Parser walks a flat token slice front to back, building an *ast tree as
// it goes. It never backtracks: every production either commits to the
// tree it has built so far or raises a *ParsingFailure that unwinds the
// entire parse.
type Parser struct {
	grammar *Grammar
	tokens  []token.Token
	source  []byte
	pos     int
}

// New returns a Parser over tokens, resolving g's lexemes against a
// fixed grammar. source, when non-nil, is used only to render
// ParsingFailure snippets; pass nil if the original buffer isn't handy.
func New(g *Grammar, tokens []token.Token, source []byte) *Parser {
	return &Parser{grammar: g, tokens: tokens, source: source}
}

// current returns the token at the cursor, or a synthetic Invalid token
// at the source's end position once the cursor runs past the last token.
func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		if n := len(p.tokens); n > 0 {
			last := p.tokens[n-1]
			return token.Token{Kind: token.Invalid, Pos: token.Position{Line: last.Pos.Line, Column: last.Pos.Column, Offset: last.End()}}
		}
		return token.Token{Kind: token.Invalid}
	}
	return p.tokens[p.pos]
}

// atEnd reports whether the cursor has consumed every token.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.current().Kind == k
}

// advance returns the current token and moves the cursor past it.
func (p *Parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// accept consumes and returns the current token if it has kind k.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes the current token if it has kind k, or raises a
// ParsingFailure naming what was expected instead.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if t, ok := p.accept(k); ok {
		return t
	}
	panic(p.failUnexpected(what, nil))
}

// expectName expects an Identifier and returns it; identifiers double as
// names throughout the grammar (variable, function, class, label names).
func (p *Parser) expectName(what string) token.Token {
	if t, ok := p.accept(token.Identifier); ok {
		return t
	}
	panic(p.failUnexpected(what, nil))
}
