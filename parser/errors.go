package parser

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/coreclang/corec/token"
)

// ParsingFailure is the sole error kind the parser raises: any expect
// that does not match, any production that consumed a distinguishing
// token and then failed to complete, or trailing tokens after the
// top-level parse. It unwinds the entire parse — no partial tree is
// returned and no resynchronization is attempted.
type ParsingFailure struct {
	Message string
	Token   token.Token
	Source  []byte
}

func (e *ParsingFailure) Error() string {
	snippet := e.snippet()
	if snippet == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\n%s", e.Message, snippet)
}

// snippet renders a Rust/Clang-style source excerpt pointing at the
// failing token, when source text is available.
func (e *ParsingFailure) snippet() string {
	if len(e.Source) == 0 || e.Token.Pos.Line == 0 {
		return ""
	}
	lines := strings.Split(string(e.Source), "\n")
	if e.Token.Pos.Line > len(lines) {
		return ""
	}
	line := lines[e.Token.Pos.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Token.Pos.Line, e.Token.Pos.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Token.Pos.Line, line)
	b.WriteString("   | ")
	if e.Token.Pos.Column > 0 && e.Token.Pos.Column <= len(line)+1 {
		b.WriteString(strings.Repeat(" ", e.Token.Pos.Column-1) + "^")
	}
	return b.String()
}

func (p *Parser) fail(format string, args ...any) *ParsingFailure {
	return &ParsingFailure{
		Message: fmt.Sprintf(format, args...),
		Token:   p.current(),
		Source:  p.source,
	}
}

// failUnexpected reports an unexpected token, appending a fuzzy-matched
// "did you mean" suggestion when the offending text is close to one of
// candidates — purely cosmetic, never changes parse outcome.
func (p *Parser) failUnexpected(expected string, candidates []string) *ParsingFailure {
	got := p.current()
	msg := fmt.Sprintf("expected %s, got %s", expected, got.Kind)
	if len(got.Text) > 0 && len(candidates) > 0 {
		if match := bestFuzzyMatch(string(got.Text), candidates); match != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, match)
		}
	}
	return p.fail("%s", msg)
}

// bestFuzzyMatch returns the closest candidate to text, or "" if none is
// close enough to be worth suggesting. fuzzy.RankFindFold already returns
// matches sorted by ascending edit distance.
func bestFuzzyMatch(text string, candidates []string) string {
	ranked := fuzzy.RankFindFold(text, candidates)
	if len(ranked) == 0 {
		return ""
	}
	best := ranked[0]
	if best.Distance > len(text)/2+2 {
		return ""
	}
	return best.Target
}
