package parser

import (
	"fmt"

	"github.com/coreclang/corec/token"
)

// Grammar resolves the fixed set of punctuation and keyword lexemes the
// grammar productions need to recognize into concrete token kinds, once,
// from whatever symbol/keyword tables the active language definition
// supplies. Kinds are computed by index (see token.SymbolStart and
// token.KeywordStart), so the parser never hard-codes a kind number —
// only the lexeme spellings below are fixed.
type Grammar struct {
	LParen, RParen     token.Kind
	LBrace, RBrace     token.Kind
	LBracket, RBracket token.Kind
	Comma, Semicolon   token.Kind
	Colon, Dot         token.Kind

	Plus, Minus, Star, Slash, Percent, Bang, Assign token.Kind
	Less, Greater, Amp, Arrow                       token.Kind
	Increment, Decrement                            token.Kind
	PlusAssign, MinusAssign, StarAssign              token.Kind
	SlashAssign, PercentAssign                       token.Kind
	Or, And                                         token.Kind
	LessEqual, GreaterEqual, Equal, NotEqual         token.Kind

	Class, Function, Var                                 token.Kind
	If, Else, While, For                                 token.Kind
	Label, Goto, Return, Break, Continue                 token.Kind
	True, False, Null, As                                token.Kind
}

// requiredSymbols and requiredKeywords are the lexeme tables NewGrammar
// resolves; a host language definition (see package config) must
// supply every one of them.
var requiredSymbols = []string{
	"(", ")", "{", "}", "[", "]", ",", ";", ":", ".",
	"+", "-", "*", "/", "%", "!", "=", "<", ">", "&", "->",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "||", "&&",
	"<=", ">=", "==", "!=",
}

var requiredKeywords = []string{
	"class", "function", "var", "if", "else", "while", "for",
	"label", "goto", "return", "break", "continue",
	"true", "false", "null", "as",
}

// NewGrammar resolves Grammar's fields against the given symbol/keyword
// tables (see lang.Symbols / lang.Keywords, or a config-loaded override).
// It fails if a required lexeme is missing from either table.
func NewGrammar(symbols, keywords []string) (*Grammar, error) {
	sym := indexOf(symbols)
	kw := indexOf(keywords)

	for _, s := range requiredSymbols {
		if _, ok := sym[s]; !ok {
			return nil, fmt.Errorf("parser: symbol table is missing required lexeme %q", s)
		}
	}
	for _, k := range requiredKeywords {
		if _, ok := kw[k]; !ok {
			return nil, fmt.Errorf("parser: keyword table is missing required lexeme %q", k)
		}
	}

	symKind := func(s string) token.Kind { return token.SymbolStart + 1 + token.Kind(sym[s]) }
	kwKind := func(k string) token.Kind { return token.KeywordStart + 1 + token.Kind(kw[k]) }

	return &Grammar{
		LParen: symKind("("), RParen: symKind(")"),
		LBrace: symKind("{"), RBrace: symKind("}"),
		LBracket: symKind("["), RBracket: symKind("]"),
		Comma: symKind(","), Semicolon: symKind(";"),
		Colon: symKind(":"), Dot: symKind("."),

		Plus: symKind("+"), Minus: symKind("-"), Star: symKind("*"),
		Slash: symKind("/"), Percent: symKind("%"), Bang: symKind("!"),
		Assign: symKind("="), Less: symKind("<"), Greater: symKind(">"),
		Amp: symKind("&"), Arrow: symKind("->"),
		Increment: symKind("++"), Decrement: symKind("--"),
		PlusAssign: symKind("+="), MinusAssign: symKind("-="),
		StarAssign: symKind("*="), SlashAssign: symKind("/="),
		PercentAssign: symKind("%="),
		Or:            symKind("||"), And: symKind("&&"),
		LessEqual: symKind("<="), GreaterEqual: symKind(">="),
		Equal: symKind("=="), NotEqual: symKind("!="),

		Class: kwKind("class"), Function: kwKind("function"), Var: kwKind("var"),
		If: kwKind("if"), Else: kwKind("else"), While: kwKind("while"), For: kwKind("for"),
		Label: kwKind("label"), Goto: kwKind("goto"), Return: kwKind("return"),
		Break: kwKind("break"), Continue: kwKind("continue"),
		True: kwKind("true"), False: kwKind("false"), Null: kwKind("null"), As: kwKind("as"),
	}, nil
}

func indexOf(table []string) map[string]int {
	m := make(map[string]int, len(table))
	for i, s := range table {
		m[s] = i
	}
	return m
}
