package ast

import "github.com/coreclang/corec/token"

// Block is the root of a parsed source file: an ordered sequence of
// top-level class, function, and variable declarations.
type Block struct {
	Globals []Node
}

func (n *Block) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitBlock(n) == Stop {
		return Stop
	}
	for _, g := range n.Globals {
		g.Walk(v, true)
	}
	return Continue
}

// Class is a named aggregate of member variables and member functions.
type Class struct {
	Name    token.Token
	Members []Node
}

func (n *Class) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitClass(n) == Stop {
		return Stop
	}
	for _, m := range n.Members {
		m.Walk(v, true)
	}
	return Continue
}

// Function is a named, parameterized block of code with an optional
// return type and body.
type Function struct {
	Name       token.Token
	Parameters []*Parameter
	ReturnType Type // nil when unspecified
	Body       *Scope
}

func (n *Function) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitFunction(n) == Stop {
		return Stop
	}
	for _, p := range n.Parameters {
		p.Walk(v, true)
	}
	if n.ReturnType != nil {
		n.ReturnType.Walk(v, true)
	}
	if n.Body != nil {
		n.Body.Walk(v, true)
	}
	return Continue
}

// Parameter is one formal parameter of a Function: a name, its required
// type, and an optional default-value expression.
type Parameter struct {
	Name         token.Token
	Type         Type
	InitialValue Expression // nil when absent
}

func (n *Parameter) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitParameter(n) == Stop {
		return Stop
	}
	if n.InitialValue != nil {
		n.InitialValue.Walk(v, true)
	}
	n.Type.Walk(v, true)
	return Continue
}

// Variable is a `var` declaration: a name, its required type, and an
// optional initializer expression. Appears both at Block scope (globals)
// and inside a Scope (locals).
type Variable struct {
	Name         token.Token
	Type         Type
	InitialValue Expression // nil when absent
}

func (n *Variable) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitVariable(n) == Stop {
		return Stop
	}
	n.Type.Walk(v, true)
	if n.InitialValue != nil {
		n.InitialValue.Walk(v, true)
	}
	return Continue
}

// Scope is a brace-delimited ordered sequence of statements, e.g. a
// function body or the body of a control-flow construct.
type Scope struct {
	Statements []Statement
}

func (n *Scope) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitScope(n) == Stop {
		return Stop
	}
	for _, s := range n.Statements {
		s.Walk(v, true)
	}
	return Continue
}
