package ast

import "github.com/coreclang/corec/token"

// Literal is a single literal token: integer, float, string, character,
// boolean, or null.
type Literal struct {
	Value token.Token
}

func (*Literal) isStatement()  {}
func (*Literal) isExpression() {}

func (n *Literal) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitLiteral(n) == Stop {
		return Stop
	}
	return Continue
}

// NameReference is a bare identifier used as a value.
type NameReference struct {
	Name token.Token
}

func (*NameReference) isStatement()  {}
func (*NameReference) isExpression() {}

func (n *NameReference) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitNameReference(n) == Stop {
		return Stop
	}
	return Continue
}

// BinaryOperator is `left op right`, built left-leaning by the
// precedence-climbing parser for levels 1-5 and right-associatively for
// level 0 (assignment).
type BinaryOperator struct {
	Operator token.Token
	Left     Expression
	Right    Expression
}

func (*BinaryOperator) isStatement()  {}
func (*BinaryOperator) isExpression() {}

func (n *BinaryOperator) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitBinaryOperator(n) == Stop {
		return Stop
	}
	n.Left.Walk(v, true)
	n.Right.Walk(v, true)
	return Continue
}

// UnaryOperator is a single prefix operator applied to its operand
// (`*p`, `&x`, `+v`, `-v`, `!b`, `++i`, `--i`). A chain of prefix
// operators nests UnaryOperator around UnaryOperator, outermost first.
type UnaryOperator struct {
	Operator token.Token
	Right    Expression
}

func (*UnaryOperator) isStatement()  {}
func (*UnaryOperator) isExpression() {}

func (n *UnaryOperator) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitUnaryOperator(n) == Stop {
		return Stop
	}
	n.Right.Walk(v, true)
	return Continue
}

// MemberAccess is a postfix `.name` or `->name` link in a postfix chain.
type MemberAccess struct {
	Operator token.Token // "." or "->"
	Left     Expression
	Name     token.Token
}

func (*MemberAccess) isStatement()      {}
func (*MemberAccess) isExpression()     {}
func (*MemberAccess) isPostExpression() {}

func (n *MemberAccess) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitMemberAccess(n) == Stop {
		return Stop
	}
	n.Left.Walk(v, true)
	return Continue
}

// Call is a postfix `(args...)` link in a postfix chain.
type Call struct {
	Left      Expression
	Arguments []Expression
}

func (*Call) isStatement()      {}
func (*Call) isExpression()     {}
func (*Call) isPostExpression() {}

func (n *Call) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitCall(n) == Stop {
		return Stop
	}
	n.Left.Walk(v, true)
	for _, a := range n.Arguments {
		a.Walk(v, true)
	}
	return Continue
}

// Cast is a postfix `as T` link in a postfix chain.
type Cast struct {
	Left Expression
	Type Type
}

func (*Cast) isStatement()      {}
func (*Cast) isExpression()     {}
func (*Cast) isPostExpression() {}

func (n *Cast) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitCast(n) == Stop {
		return Stop
	}
	n.Left.Walk(v, true)
	n.Type.Walk(v, true)
	return Continue
}

// Index is a postfix `[expr]` link in a postfix chain.
type Index struct {
	Left  Expression
	Value Expression
}

func (*Index) isStatement()      {}
func (*Index) isExpression()     {}
func (*Index) isPostExpression() {}

func (n *Index) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitIndex(n) == Stop {
		return Stop
	}
	n.Left.Walk(v, true)
	n.Value.Walk(v, true)
	return Continue
}
