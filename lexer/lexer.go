// Package lexer drives package lang's tokenizer over a whole source
// buffer, turning the single-token read_language_token primitive into a
// full token stream with line/column bookkeeping.
package lexer

import (
	"log/slog"
	"os"

	"github.com/coreclang/corec/lang"
	"github.com/coreclang/corec/token"
)

// Lexer walks one source buffer front to back, tracking line/column
// position as it consumes each token package lang hands back.
type Lexer struct {
	lang   *lang.Language
	source []byte
	logger *slog.Logger

	offset int
	line   int
	column int
}

// New returns a Lexer over source using l to recognize tokens.
//
// Debug logging follows the environment-gated pattern used throughout
// this codebase: set CORE_DEBUG_LEXER to anything non-empty to see one
// debug line per token on stderr.
func New(l *lang.Language, source []byte) *Lexer {
	level := slog.LevelInfo
	if os.Getenv("CORE_DEBUG_LEXER") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	return &Lexer{
		lang:   l,
		source: source,
		logger: logger,
		line:   1,
		column: 1,
	}
}

// Next returns the next token in the stream. At end of input it returns
// a zero-length token.Token whose Kind is token.Invalid with empty text;
// callers should stop once Length and len(Text) are both zero.
//
// On a lexical failure (package lang's read_language_token accepts
// nothing at this position) the driver's job, per the error-handling
// design, is to decide whether to skip a character or give up; this
// driver always skips exactly one byte and emits it as an Invalid token,
// guaranteeing forward progress.
func (lx *Lexer) Next() token.Token {
	if lx.offset >= len(lx.source) {
		return token.Token{Kind: token.Invalid, Pos: lx.pos()}
	}

	pos := lx.pos()
	res := lx.lang.ReadToken(lx.source[lx.offset:])

	length := res.Length
	kind := res.Kind
	if kind == token.Invalid || length == 0 {
		length = 1
		kind = token.Invalid
		lx.logger.Debug("lexical failure, skipping byte", "offset", lx.offset, "line", pos.Line, "column", pos.Column)
	}

	text := lx.source[lx.offset : lx.offset+length]
	t := token.Token{Kind: kind, Text: text, Length: length, Pos: pos}
	lx.advance(length)

	lx.logger.Debug("token", "kind", kind, "text", string(text), "pos", pos.String())
	return t
}

// Tokenize runs Next to exhaustion and returns every token, including
// Whitespace/comment tokens — callers that don't want those call
// parser.RemoveWhitespaceAndComments afterward.
func (lx *Lexer) Tokenize() []token.Token {
	var out []token.Token
	for {
		t := lx.Next()
		if t.Length == 0 {
			break
		}
		out = append(out, t)
	}
	return out
}

// Tokenize is a convenience wrapper: New(l, source).Tokenize().
func Tokenize(l *lang.Language, source []byte) []token.Token {
	return New(l, source).Tokenize()
}

func (lx *Lexer) pos() token.Position {
	return token.Position{Line: lx.line, Column: lx.column, Offset: lx.offset}
}

func (lx *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		ch := lx.source[lx.offset]
		lx.offset++
		if ch == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
	}
}
