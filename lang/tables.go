// Package lang builds the concrete lexical automaton for this language on
// top of package dfa's generic primitives, and applies the keyword
// post-filter described alongside it. Everything language-specific —
// the symbol and keyword lexeme tables, the shape of string/char/comment
// sub-automata — lives here; package dfa knows nothing about any of it.
package lang

// Symbols is the ordered table of punctuation/operator lexemes. Position
// in this slice determines a symbol's token kind: the i'th entry's kind
// is token.SymbolStart + 1 + i. The symbol trie builder chains longer
// symbols off the state reached by their prefix; a proper prefix that is
// not itself an entry (e.g. "|" of "||") gets a non-accepting placeholder
// state instead of a kind.
//
// This is the built-in default table; a host may supply its own ordered
// list (see config.Load).
var Symbols = []string{
	"(", ")", "{", "}", "[", "]", ",", ";", ":", ".",
	"+", "-", "*", "/", "%", "!", "=", "<", ">", "&",
	"->", "++", "--",
	"+=", "-=", "*=", "/=", "%=",
	"||", "&&",
	"<=", ">=", "==", "!=",
}

// Keywords is the ordered table of reserved words. The i'th entry's kind
// is token.KeywordStart + 1 + i.
var Keywords = []string{
	"class", "function", "var",
	"if", "else", "while", "for",
	"label", "goto", "return", "break", "continue",
	"true", "false", "null",
	"as",
}
