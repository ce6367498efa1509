package dfa

import "testing"
import "github.com/coreclang/corec/token"

// buildSelfLoop builds root --alpha--> A, A self-loops on alpha, A
// accepts Identifier.
func buildSelfLoop(t *testing.T) (*Pool, State) {
	t.Helper()
	p := NewPool(0, 0)
	root, err := p.AddState(token.Invalid)
	if err != nil {
		t.Fatalf("AddState(root): %v", err)
	}
	a, err := p.AddState(token.Identifier)
	if err != nil {
		t.Fatalf("AddState(a): %v", err)
	}
	if err := p.AddEdgeWithPredicate(root, a, PredAlpha); err != nil {
		t.Fatalf("AddEdgeWithPredicate(root->a): %v", err)
	}
	if err := p.AddEdgeWithPredicate(a, a, PredAlpha); err != nil {
		t.Fatalf("AddEdgeWithPredicate(a->a): %v", err)
	}
	return p, root
}

func TestReadTokenSelfLoopConsumesWholeRun(t *testing.T) {
	p, root := buildSelfLoop(t)
	res := p.ReadToken(root, []byte("abcXYZ"))
	if res.Kind != token.Identifier || res.Length != 6 {
		t.Fatalf("got (%v,%d), want (Identifier,6)", res.Kind, res.Length)
	}
}

func TestReadTokenLengthNeverExceedsInput(t *testing.T) {
	p, root := buildSelfLoop(t)
	for _, s := range []string{"", "a", "abc123"} {
		res := p.ReadToken(root, []byte(s))
		if res.Length > len(s) {
			t.Errorf("ReadToken(%q).Length = %d > %d", s, res.Length, len(s))
		}
	}
}

func TestReadTokenLongestMatch(t *testing.T) {
	// root --digit--> Int (accepting). Int --'.'-- > Dot. Dot --digit--> Float (accepting).
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	intSt, _ := p.AddState(token.IntegerLiteral)
	dot, _ := p.AddState(token.Invalid)
	float, _ := p.AddState(token.FloatLiteral)

	mustOK(t, p.AddEdgeWithPredicate(root, intSt, PredDigit))
	mustOK(t, p.AddEdgeWithPredicate(intSt, intSt, PredDigit))
	mustOK(t, p.AddEdge(intSt, dot, '.'))
	mustOK(t, p.AddEdgeWithPredicate(dot, float, PredDigit))
	mustOK(t, p.AddEdgeWithPredicate(float, float, PredDigit))

	res := p.ReadToken(root, []byte("12.5x"))
	if res.Kind != token.FloatLiteral || res.Length != 4 {
		t.Fatalf("got (%v,%d), want (FloatLiteral,4)", res.Kind, res.Length)
	}

	// "12x" has only the integer prefix acceptable; longest accepted is 2.
	res2 := p.ReadToken(root, []byte("12x"))
	if res2.Kind != token.IntegerLiteral || res2.Length != 2 {
		t.Fatalf("got (%v,%d), want (IntegerLiteral,2)", res2.Kind, res2.Length)
	}
}

func TestReadTokenTieBreakFirstEdgeWins(t *testing.T) {
	// root has two edges on 'a': first to an accepting state, second to a
	// dead (non-accepting, no further edges) state. The first must win.
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	winner, _ := p.AddState(token.Identifier)
	loser, _ := p.AddState(token.Invalid)
	mustOK(t, p.AddEdge(root, winner, 'a'))
	mustOK(t, p.AddEdge(root, loser, 'a'))

	res := p.ReadToken(root, []byte("a"))
	if res.Kind != token.Identifier || res.Length != 1 {
		t.Fatalf("got (%v,%d), want (Identifier,1) — first edge should win the tie", res.Kind, res.Length)
	}
}

func TestReadTokenFailureReturnsWalkedDistance(t *testing.T) {
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	dead, _ := p.AddState(token.Invalid)
	mustOK(t, p.AddEdge(root, dead, 'x'))

	res := p.ReadToken(root, []byte("xyz"))
	if res.Kind != token.Invalid {
		t.Fatalf("Kind = %v, want Invalid", res.Kind)
	}
	if res.Length != 1 {
		t.Fatalf("Length = %d, want 1 (walked to the dead state and stopped)", res.Length)
	}
}

func TestReadTokenEmptyInputNeverAccepts(t *testing.T) {
	p, root := buildSelfLoop(t)
	res := p.ReadToken(root, []byte(""))
	if res.Kind != token.Invalid || res.Length != 0 {
		t.Fatalf("got (%v,%d), want (Invalid,0)", res.Kind, res.Length)
	}
}

func TestDefaultEdgeOnlyWhenNoOrdinaryEdgeMatches(t *testing.T) {
	// root --'"'--> open. open --'"'--> closed (accepting). open has a
	// default edge looping to itself, absorbing anything else.
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	open, _ := p.AddState(token.Invalid)
	closed, _ := p.AddState(token.StringLiteral)
	mustOK(t, p.AddEdge(root, open, '"'))
	mustOK(t, p.AddEdge(open, closed, '"'))
	mustOK(t, p.AddDefaultEdge(open, open))

	res := p.ReadToken(root, []byte(`"hi"`))
	if res.Kind != token.StringLiteral || res.Length != 4 {
		t.Fatalf("got (%v,%d), want (StringLiteral,4)", res.Kind, res.Length)
	}
}

func TestUnterminatedDefaultLoopStopsAtNUL(t *testing.T) {
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	open, _ := p.AddState(token.Invalid)
	closed, _ := p.AddState(token.StringLiteral)
	mustOK(t, p.AddEdge(root, open, '"'))
	mustOK(t, p.AddEdge(open, closed, '"'))
	mustOK(t, p.AddDefaultEdge(open, open))

	// Never closed — without the NUL guard this would loop forever.
	res := p.ReadToken(root, []byte(`"hi there`))
	if res.Kind != token.Invalid {
		t.Fatalf("Kind = %v, want Invalid (unterminated string never accepts)", res.Kind)
	}
	if res.Length != len(`"hi there`) {
		t.Fatalf("Length = %d, want %d", res.Length, len(`"hi there`))
	}
}

func TestEndOfLinePredicateIsZeroWidth(t *testing.T) {
	// root --'#'--> start (non-accepting). start default-loops to itself,
	// absorbing the comment body. start -> accepting end on end-of-line,
	// without consuming the triggering character — it belongs to
	// whatever token comes next.
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	start, _ := p.AddState(token.Invalid)
	end, _ := p.AddState(token.SingleLineComment)
	mustOK(t, p.AddEdge(root, start, '#'))
	mustOK(t, p.AddEdgeWithPredicate(start, end, PredEndOfLine))
	mustOK(t, p.AddDefaultEdge(start, start))

	res := p.ReadToken(root, []byte("#comment\nrest"))
	if res.Kind != token.SingleLineComment || res.Length != len("#comment") {
		t.Fatalf("got (%v,%d), want (SingleLineComment,%d)", res.Kind, res.Length, len("#comment"))
	}
}

func TestEndOfLinePredicateAtTrueEndOfStream(t *testing.T) {
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	start, _ := p.AddState(token.Invalid)
	end, _ := p.AddState(token.SingleLineComment)
	mustOK(t, p.AddEdge(root, start, '#'))
	mustOK(t, p.AddEdgeWithPredicate(start, end, PredEndOfLine))
	mustOK(t, p.AddDefaultEdge(start, start))

	// No trailing newline at all: NUL-as-end-of-line still closes it.
	res := p.ReadToken(root, []byte("#comment"))
	if res.Kind != token.SingleLineComment || res.Length != len("#comment") {
		t.Fatalf("got (%v,%d), want (SingleLineComment,%d)", res.Kind, res.Length, len("#comment"))
	}
}

func TestAddDefaultEdgeTwiceFails(t *testing.T) {
	p := NewPool(0, 0)
	root, _ := p.AddState(token.Invalid)
	a, _ := p.AddState(token.Invalid)
	b, _ := p.AddState(token.Invalid)
	mustOK(t, p.AddDefaultEdge(root, a))
	if err := p.AddDefaultEdge(root, b); err != ErrDuplicateDefaultEdge {
		t.Fatalf("second AddDefaultEdge error = %v, want ErrDuplicateDefaultEdge", err)
	}
}

func TestAddStateCapacityExceeded(t *testing.T) {
	p := NewPool(1, 0)
	if _, err := p.AddState(token.Invalid); err != nil {
		t.Fatalf("first AddState: %v", err)
	}
	if _, err := p.AddState(token.Invalid); err != ErrCapacityExceeded {
		t.Fatalf("second AddState error = %v, want ErrCapacityExceeded", err)
	}
}

func TestDeleteStateAndChildrenResetsPool(t *testing.T) {
	p, root := buildSelfLoop(t)
	p.DeleteStateAndChildren(root)
	if p.NumStates() != 0 || p.NumEdges() != 0 {
		t.Fatalf("pool not empty after delete: states=%d edges=%d", p.NumStates(), p.NumEdges())
	}
	newRoot, err := p.AddState(token.Invalid)
	if err != nil {
		t.Fatalf("AddState after delete: %v", err)
	}
	if newRoot != root {
		t.Fatalf("AddState after delete returned %d, want %d (same handle as before)", newRoot, root)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
