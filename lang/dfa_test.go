package lang

import (
	"testing"

	"github.com/coreclang/corec/token"
)

func newTestLanguage(t *testing.T) *Language {
	t.Helper()
	l, err := New(Symbols, Keywords)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestReadTokenKeywordPostFilter(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("var"))
	if !res.Kind.IsKeyword() {
		t.Fatalf("Kind = %v, want a keyword kind", res.Kind)
	}
	if res.Length != 3 {
		t.Fatalf("Length = %d, want 3", res.Length)
	}
}

func TestReadTokenOrdinaryIdentifierUnaffected(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("variable"))
	if res.Kind != token.Identifier {
		t.Fatalf("Kind = %v, want Identifier", res.Kind)
	}
	if res.Length != 8 {
		t.Fatalf("Length = %d, want 8", res.Length)
	}
}

func TestReadTokenWhitespaceRun(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("   \t\nx"))
	if res.Kind != token.Whitespace || res.Length != 5 {
		t.Fatalf("got (%v,%d), want (Whitespace,5)", res.Kind, res.Length)
	}
}

func TestReadTokenIntegerLiteral(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("42;"))
	if res.Kind != token.IntegerLiteral || res.Length != 2 {
		t.Fatalf("got (%v,%d), want (IntegerLiteral,2)", res.Kind, res.Length)
	}
}

func TestReadTokenFloatLiteral(t *testing.T) {
	l := newTestLanguage(t)
	cases := []struct {
		in   string
		want int
	}{
		{"3.14", 4},
		{"3.14f", 5},
		{"3.14e-10", 8},
	}
	for _, tc := range cases {
		res := l.ReadToken([]byte(tc.in + ";"))
		if res.Kind != token.FloatLiteral || res.Length != tc.want {
			t.Errorf("ReadToken(%q) = (%v,%d), want (FloatLiteral,%d)", tc.in, res.Kind, res.Length, tc.want)
		}
	}
}

func TestReadTokenStringLiteral(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte(`"hello, \"world\""`))
	if res.Kind != token.StringLiteral {
		t.Fatalf("Kind = %v, want StringLiteral", res.Kind)
	}
	if res.Length != len(`"hello, \"world\""`) {
		t.Fatalf("Length = %d, want %d", res.Length, len(`"hello, \"world\""`))
	}
}

func TestReadTokenCharacterLiteral(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte(`'\n'`))
	if res.Kind != token.CharacterLiteral || res.Length != 4 {
		t.Fatalf("got (%v,%d), want (CharacterLiteral,4)", res.Kind, res.Length)
	}
}

func TestReadTokenSingleLineComment(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("// a comment\nrest"))
	if res.Kind != token.SingleLineComment {
		t.Fatalf("Kind = %v, want SingleLineComment", res.Kind)
	}
	if res.Length != len("// a comment") {
		t.Fatalf("Length = %d, want %d", res.Length, len("// a comment"))
	}
}

func TestReadTokenMultiLineComment(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("/* spans\nlines */rest"))
	if res.Kind != token.MultiLineComment {
		t.Fatalf("Kind = %v, want MultiLineComment", res.Kind)
	}
	if res.Length != len("/* spans\nlines */") {
		t.Fatalf("Length = %d, want %d", res.Length, len("/* spans\nlines */"))
	}
}

func TestReadTokenSingleLineCommentAtEndOfStream(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("// no trailing newline"))
	if res.Kind != token.SingleLineComment {
		t.Fatalf("Kind = %v, want SingleLineComment", res.Kind)
	}
	if res.Length != len("// no trailing newline") {
		t.Fatalf("Length = %d, want %d", res.Length, len("// no trailing newline"))
	}
}

func TestReadTokenDivideIsNotSwallowedByCommentPaths(t *testing.T) {
	l := newTestLanguage(t)
	res := l.ReadToken([]byte("/ 2"))
	if res.Length != 1 {
		t.Fatalf("Length = %d, want 1", res.Length)
	}
	wantIdx := -1
	for i, s := range Symbols {
		if s == "/" {
			wantIdx = i
		}
	}
	if wantIdx < 0 {
		t.Fatal("\"/\" missing from Symbols table")
	}
	if res.Kind != symbolKind(wantIdx) {
		t.Fatalf("Kind = %v, want Divide symbol kind %v", res.Kind, symbolKind(wantIdx))
	}
}

func TestReadTokenMultiCharSymbolsWinOverPrefix(t *testing.T) {
	l := newTestLanguage(t)
	cases := []struct {
		in   string
		want string
	}{
		{"->x", "->"},
		{"++x", "++"},
		{"<=x", "<="},
		{"<x", "<"},
	}
	for _, tc := range cases {
		res := l.ReadToken([]byte(tc.in))
		if res.Length != len(tc.want) {
			t.Errorf("ReadToken(%q).Length = %d, want %d (%q)", tc.in, res.Length, len(tc.want), tc.want)
		}
	}
}

// TestReadTokenLogicalOperatorsWithNoStandaloneSinglePrefix covers "||",
// whose single-character prefix "|" is not itself a table entry, unlike
// "&&" off the standalone "&" (address-of/reference) symbol.
func TestReadTokenLogicalOperatorsWithNoStandaloneSinglePrefix(t *testing.T) {
	l := newTestLanguage(t)
	cases := []struct {
		in   string
		want string
	}{
		{"|| x", "||"},
		{"&& x", "&&"},
		{"& x", "&"},
	}
	for _, tc := range cases {
		res := l.ReadToken([]byte(tc.in))
		if res.Length != len(tc.want) {
			t.Errorf("ReadToken(%q).Length = %d, want %d (%q)", tc.in, res.Length, len(tc.want), tc.want)
		}
	}
}

// TestTokenizeVarDeclaration reproduces the spec's `var x : int = 42;`
// end-to-end tokenization scenario.
func TestTokenizeVarDeclaration(t *testing.T) {
	l := newTestLanguage(t)
	src := []byte("var x : int = 42;")

	type want struct {
		kindIsKeyword bool
		kind          token.Kind
		text          string
	}
	offset := 0
	var got []string
	for offset < len(src) {
		res := l.ReadToken(src[offset:])
		if res.Length == 0 {
			t.Fatalf("zero-length token at offset %d", offset)
		}
		text := string(src[offset : offset+res.Length])
		if res.Kind != token.Whitespace {
			got = append(got, text)
		}
		offset += res.Length
	}

	wantTexts := []string{"var", "x", ":", "int", "=", "42", ";"}
	if len(got) != len(wantTexts) {
		t.Fatalf("got %d non-whitespace tokens %v, want %d %v", len(got), got, len(wantTexts), wantTexts)
	}
	for i, w := range wantTexts {
		if got[i] != w {
			t.Errorf("token[%d] = %q, want %q", i, got[i], w)
		}
	}
}

// TestTokenizeCommentScenario reproduces the spec's
// "/* a */ // b\nfoo" end-to-end tokenization scenario: the single-line
// comment's text excludes its terminating newline, which surfaces as its
// own, separate Whitespace token.
func TestTokenizeCommentScenario(t *testing.T) {
	l := newTestLanguage(t)
	src := []byte("/* a */ // b\nfoo")

	type piece struct {
		kind token.Kind
		text string
	}
	var got []piece
	offset := 0
	for offset < len(src) {
		res := l.ReadToken(src[offset:])
		if res.Length == 0 {
			t.Fatalf("zero-length token at offset %d", offset)
		}
		got = append(got, piece{res.Kind, string(src[offset : offset+res.Length])})
		offset += res.Length
	}

	want := []piece{
		{token.MultiLineComment, "/* a */"},
		{token.Whitespace, " "},
		{token.SingleLineComment, "// b"},
		{token.Whitespace, "\n"},
		{token.Identifier, "foo"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("token[%d] = %+v, want %+v", i, got[i], w)
		}
	}
}
