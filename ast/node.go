// Package ast defines the concrete syntax tree produced by the parser and
// the visitor framework used to traverse it.
//
// The node family is a closed sum (see each node's doc comment for its
// variant-specific fields); every node owns its children exclusively, and
// destroying the root of a tree is enough to release the whole subtree —
// there are no back-references or shared ownership anywhere in the tree.
package ast

// Result is returned by a visitor hook to signal whether Walk should
// continue descending into the visited node's children (Continue) or
// stop short of them (Stop).
type Result int

const (
	Continue Result = iota
	Stop
)

// Node is implemented by every AST variant. Walk dispatches to the
// visitor's hook for this node's concrete variant when visitSelf is true;
// the hook's Result then gates whether Walk descends into this node's
// children (Continue) or not (Stop). When visitSelf is false the hook is
// skipped entirely and Walk proceeds straight to the children.
//
// A visitor that wants full control over its own recursion (as opposed to
// the automatic category-default descent) returns Stop from its hook and
// walks whichever children it likes, with whichever visitSelf flag it
// likes, itself — see Printer for an example.
type Node interface {
	Walk(v *Visitor, visitSelf bool) Result
}

// Statement is implemented by every node that can appear in statement
// position inside a Scope.
type Statement interface {
	Node
	isStatement()
}

// Expression is implemented by every node that can appear in expression
// position. Expression embeds Statement, so every expression node also
// satisfies Statement; the parser itself wraps an expression in statement
// position in an ExpressionStatement.
type Expression interface {
	Statement
	isExpression()
}

// PostExpression is implemented by the four postfix chain links:
// MemberAccess, Call, Cast, Index.
type PostExpression interface {
	Expression
	isPostExpression()
}

// Type is implemented by every node that can appear in type position.
type Type interface {
	Node
	isType()
}
