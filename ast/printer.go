package ast

import (
	"fmt"
	"io"
	"strings"
)

// nodePrinter writes one indented line per visited node, grounded on the
// original VisitorPrinter/NodePrinter pair: each hook prints its own
// node's label, then manually walks whichever children it wants to
// include in the tree, one indent level deeper.
type nodePrinter struct {
	w      io.Writer
	indent int
}

func (p *nodePrinter) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// NewPrinter returns a Visitor that writes an indented tree dump of
// whatever it walks to w. Each hook prints its own node and then
// recurses into children one level deeper, returning Stop so the
// generic per-node Walk does not also auto-descend (which would print
// children twice).
func NewPrinter(w io.Writer) *Visitor {
	v := NewVisitor()
	p := &nodePrinter{w: w}

	child := func(n Node) {
		p.indent++
		n.Walk(v, true)
		p.indent--
	}

	v.VisitBlock = func(n *Block) Result {
		p.line("Block")
		for _, g := range n.Globals {
			child(g)
		}
		return Stop
	}
	v.VisitClass = func(n *Class) Result {
		p.line("Class(%s)", n.Name)
		for _, m := range n.Members {
			child(m)
		}
		return Stop
	}
	v.VisitFunction = func(n *Function) Result {
		p.line("Function(%s)", n.Name)
		for _, param := range n.Parameters {
			child(param)
		}
		if n.ReturnType != nil {
			child(n.ReturnType)
		}
		if n.Body != nil {
			child(n.Body)
		}
		return Stop
	}
	v.VisitParameter = func(n *Parameter) Result {
		p.line("Parameter(%s)", n.Name)
		child(n.Type)
		if n.InitialValue != nil {
			child(n.InitialValue)
		}
		return Stop
	}
	v.VisitVariable = func(n *Variable) Result {
		p.line("Variable(%s)", n.Name)
		child(n.Type)
		if n.InitialValue != nil {
			child(n.InitialValue)
		}
		return Stop
	}
	v.VisitScope = func(n *Scope) Result {
		p.line("Scope")
		for _, s := range n.Statements {
			child(s)
		}
		return Stop
	}

	v.VisitNamedType = func(n *NamedType) Result {
		p.line("NamedType(%s)", n.Name)
		return Stop
	}
	v.VisitPointerType = func(n *PointerType) Result {
		p.line("PointerType")
		child(n.PointerTo)
		return Stop
	}
	v.VisitReferenceType = func(n *ReferenceType) Result {
		p.line("ReferenceType")
		child(n.ReferenceTo)
		return Stop
	}
	v.VisitFunctionType = func(n *FunctionType) Result {
		p.line("FunctionType")
		for _, param := range n.Parameters {
			child(param)
		}
		if n.Return != nil {
			child(n.Return)
		}
		return Stop
	}

	v.VisitIf = func(n *If) Result {
		p.line("If")
		child(n.Condition)
		child(n.Body)
		if n.Else != nil {
			child(n.Else)
		}
		return Stop
	}
	v.VisitWhile = func(n *While) Result {
		p.line("While")
		child(n.Condition)
		child(n.Body)
		return Stop
	}
	v.VisitFor = func(n *For) Result {
		p.line("For")
		if n.InitialVariable != nil {
			child(n.InitialVariable)
		}
		if n.InitialExpression != nil {
			child(n.InitialExpression)
		}
		if n.Condition != nil {
			child(n.Condition)
		}
		if n.Body != nil {
			child(n.Body)
		}
		if n.Iterator != nil {
			child(n.Iterator)
		}
		return Stop
	}
	v.VisitReturn = func(n *Return) Result {
		p.line("Return")
		if n.Value != nil {
			child(n.Value)
		}
		return Stop
	}
	v.VisitBreak = func(*Break) Result {
		p.line("Break")
		return Stop
	}
	v.VisitContinue = func(*Continue) Result {
		p.line("Continue")
		return Stop
	}
	v.VisitLabel = func(n *Label) Result {
		p.line("Label(%s)", n.Name)
		return Stop
	}
	v.VisitGoto = func(n *Goto) Result {
		p.line("Goto(%s)", n.Name)
		return Stop
	}
	v.VisitExpressionStatement = func(n *ExpressionStatement) Result {
		p.line("ExpressionStatement")
		child(n.Value)
		return Stop
	}

	v.VisitLiteral = func(n *Literal) Result {
		p.line("Literal(%s)", n.Value)
		return Stop
	}
	v.VisitNameReference = func(n *NameReference) Result {
		p.line("NameReference(%s)", n.Name)
		return Stop
	}
	v.VisitBinaryOperator = func(n *BinaryOperator) Result {
		p.line("BinaryOperator(%s)", n.Operator)
		child(n.Left)
		child(n.Right)
		return Stop
	}
	v.VisitUnaryOperator = func(n *UnaryOperator) Result {
		p.line("UnaryOperator(%s)", n.Operator)
		child(n.Right)
		return Stop
	}
	v.VisitMemberAccess = func(n *MemberAccess) Result {
		p.line("MemberAccess(%s, %s)", n.Operator, n.Name)
		child(n.Left)
		return Stop
	}
	v.VisitCall = func(n *Call) Result {
		p.line("Call")
		child(n.Left)
		for _, a := range n.Arguments {
			child(a)
		}
		return Stop
	}
	v.VisitCast = func(n *Cast) Result {
		p.line("Cast")
		child(n.Left)
		child(n.Type)
		return Stop
	}
	v.VisitIndex = func(n *Index) Result {
		p.line("Index")
		child(n.Left)
		child(n.Value)
		return Stop
	}

	return v
}

// PrintTree walks root with a fresh printing visitor, writing an
// indented dump to w. Equivalent to the spec's print_tree.
func PrintTree(w io.Writer, root Node) {
	root.Walk(NewPrinter(w), true)
}
