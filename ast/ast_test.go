package ast

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreclang/corec/token"
)

func tok(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: []byte(text), Length: len(text)}
}

func TestWalkVisitsEveryVariantByDefault(t *testing.T) {
	tree := &Block{Globals: []Node{
		&Variable{
			Name:         tok(token.Identifier, "x"),
			Type:         &NamedType{Name: tok(token.Identifier, "int")},
			InitialValue: &Literal{Value: tok(token.IntegerLiteral, "42")},
		},
	}}

	var visited []string
	v := NewVisitor()
	v.VisitBlock = func(n *Block) Result { visited = append(visited, "Block"); return Continue }
	v.VisitVariable = func(n *Variable) Result { visited = append(visited, "Variable"); return Continue }
	v.VisitNamedType = func(n *NamedType) Result { visited = append(visited, "NamedType"); return Continue }
	v.VisitLiteral = func(n *Literal) Result { visited = append(visited, "Literal"); return Continue }

	tree.Walk(v, true)

	assert.Equal(t, []string{"Block", "Variable", "NamedType", "Literal"}, visited)
}

func TestCategoryOverridePrunesAllExpressions(t *testing.T) {
	tree := &BinaryOperator{
		Operator: tok(token.SymbolStart+1, "+"),
		Left:     &Literal{Value: tok(token.IntegerLiteral, "1")},
		Right:    &Literal{Value: tok(token.IntegerLiteral, "2")},
	}

	var visited []string
	v := NewVisitor()
	// Override only the category hook: every concrete expression hook's
	// default chains through VisitExpression, so this alone should
	// suppress descent into both literal operands without touching
	// VisitBinaryOperator or VisitLiteral individually.
	v.VisitExpression = func(n Expression) Result {
		visited = append(visited, "expr")
		return Stop
	}

	tree.Walk(v, true)

	require.Len(t, visited, 1, "overriding the category hook must stop the whole expression subtree in one hit")
}

func TestWalkVisitSelfFalseSkipsOwnHook(t *testing.T) {
	lit := &Literal{Value: tok(token.IntegerLiteral, "7")}

	called := false
	v := NewVisitor()
	v.VisitLiteral = func(n *Literal) Result { called = true; return Continue }

	lit.Walk(v, false)

	assert.False(t, called, "visitSelf=false must not invoke this node's own hook")
}

func TestWalkStopPreventsAutoDescend(t *testing.T) {
	right := &Literal{Value: tok(token.IntegerLiteral, "9")}
	un := &UnaryOperator{Operator: tok(token.SymbolStart+1, "-"), Right: right}

	literalVisited := false
	v := NewVisitor()
	v.VisitUnaryOperator = func(n *UnaryOperator) Result { return Stop }
	v.VisitLiteral = func(n *Literal) Result { literalVisited = true; return Continue }

	un.Walk(v, true)

	assert.False(t, literalVisited, "a Stop from the node's own hook must suppress the automatic child descend")
}

func TestPrintTreeIfElseChain(t *testing.T) {
	tree := &If{
		Condition: &NameReference{Name: tok(token.Identifier, "cond")},
		Body:      &Scope{Statements: []Statement{&Break{}}},
		Else: &If{
			Condition: &NameReference{Name: tok(token.Identifier, "other")},
			Body:      &Scope{Statements: []Statement{&Continue{}}},
			Else:      &Scope{Statements: []Statement{&Return{}}},
		},
	}

	var sb strings.Builder
	PrintTree(&sb, tree)
	out := sb.String()

	for _, want := range []string{"If", "NameReference(cond)", "Break", "NameReference(other)", "Continue", "Return"} {
		assert.Contains(t, out, want)
	}
}

func TestPostfixChainShape(t *testing.T) {
	// a.b->c[d](e) parsed left-to-right as nested postfix links.
	a := &NameReference{Name: tok(token.Identifier, "a")}
	dotB := &MemberAccess{Operator: tok(token.SymbolStart+1, "."), Left: a, Name: tok(token.Identifier, "b")}
	arrowC := &MemberAccess{Operator: tok(token.SymbolStart+1, "->"), Left: dotB, Name: tok(token.Identifier, "c")}
	indexD := &Index{Left: arrowC, Value: &NameReference{Name: tok(token.Identifier, "d")}}
	callE := &Call{Left: indexD, Arguments: []Expression{&NameReference{Name: tok(token.Identifier, "e")}}}

	want := &Call{
		Left: &Index{
			Left: &MemberAccess{
				Operator: tok(token.SymbolStart+1, "->"),
				Left: &MemberAccess{
					Operator: tok(token.SymbolStart+1, "."),
					Left:     &NameReference{Name: tok(token.Identifier, "a")},
					Name:     tok(token.Identifier, "b"),
				},
				Name: tok(token.Identifier, "c"),
			},
			Value: &NameReference{Name: tok(token.Identifier, "d")},
		},
		Arguments: []Expression{&NameReference{Name: tok(token.Identifier, "e")}},
	}

	if diff := cmp.Diff(want, callE); diff != "" {
		t.Errorf("postfix chain shape mismatch (-want +got):\n%s", diff)
	}
}
