// Package token defines the lexical vocabulary shared by the DFA tokenizer
// and the parser: token kinds (grouped into disjoint bands), the Token
// value itself, and source position bookkeeping.
package token

import "fmt"

// Kind is a tagged numeric identifier for a token, drawn from five
// disjoint bands. Band boundaries are exposed as sentinels so the symbol
// and keyword tables can compute a kind by index instead of hand-listing
// one constant per entry.
type Kind int

const (
	// Invalid marks a token the tokenizer could not accept at all.
	Invalid Kind = iota

	// Whitespace/comment band.
	Whitespace
	SingleLineComment
	MultiLineComment

	// Identifier band.
	Identifier

	// Literal band.
	IntegerLiteral
	FloatLiteral
	StringLiteral
	CharacterLiteral
	BooleanLiteral
	NullLiteral

	// SymbolStart is a sentinel: real symbol kinds are SymbolStart+1+i for
	// the i'th entry of the symbol table (see lang.Symbols). It is never
	// itself a token's kind.
	SymbolStart

	// KeywordStart is a sentinel: real keyword kinds are
	// KeywordStart+1+i for the i'th entry of the keyword table (see
	// lang.Keywords). It is never itself a token's kind.
	KeywordStart = SymbolStart + 256
)

// String renders a Kind for diagnostics. Symbol and keyword kinds print
// as their band-relative index since their names live in the runtime
// symbol/keyword tables, not in this package.
func (k Kind) String() string {
	switch {
	case k == Invalid:
		return "Invalid"
	case k == Whitespace:
		return "Whitespace"
	case k == SingleLineComment:
		return "SingleLineComment"
	case k == MultiLineComment:
		return "MultiLineComment"
	case k == Identifier:
		return "Identifier"
	case k == IntegerLiteral:
		return "IntegerLiteral"
	case k == FloatLiteral:
		return "FloatLiteral"
	case k == StringLiteral:
		return "StringLiteral"
	case k == CharacterLiteral:
		return "CharacterLiteral"
	case k == BooleanLiteral:
		return "BooleanLiteral"
	case k == NullLiteral:
		return "NullLiteral"
	case k == SymbolStart:
		return "SymbolStart"
	case k == KeywordStart:
		return "KeywordStart"
	case k > SymbolStart && k < KeywordStart:
		return fmt.Sprintf("Symbol(%d)", int(k-SymbolStart-1))
	case k > KeywordStart:
		return fmt.Sprintf("Keyword(%d)", int(k-KeywordStart-1))
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsSymbol reports whether k names an entry of the symbol table.
func (k Kind) IsSymbol() bool { return k > SymbolStart && k < KeywordStart }

// IsKeyword reports whether k names an entry of the keyword table.
func (k Kind) IsKeyword() bool { return k > KeywordStart }

// Position is a 1-based line/column paired with a 0-based byte offset
// into the source buffer.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is (kind, text, length). Text is a slice into the original source
// buffer — the token does not own it, and the buffer must outlive every
// token sliced from it. Tokens are small and meant to be value-copied.
type Token struct {
	Kind   Kind
	Text   []byte
	Length int
	Pos    Position
}

// String returns the token text as a string (test/debug helper — avoid
// on hot paths since it copies).
func (t Token) String() string {
	return string(t.Text)
}

// End returns the offset one past the last byte of this token.
func (t Token) End() int {
	return t.Pos.Offset + t.Length
}
