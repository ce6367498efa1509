package ast

import "github.com/coreclang/corec/token"

// NamedType is a plain type name, e.g. "int" or a class name.
type NamedType struct {
	Name token.Token
}

func (*NamedType) isType() {}

func (n *NamedType) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitNamedType(n) == Stop {
		return Stop
	}
	return Continue
}

// PointerType wraps another type as "T*". Chains of stars nest
// PointerType around PointerType, innermost first.
type PointerType struct {
	PointerTo Type
}

func (*PointerType) isType() {}

func (n *PointerType) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitPointerType(n) == Stop {
		return Stop
	}
	n.PointerTo.Walk(v, true)
	return Continue
}

// ReferenceType wraps another type as "T&". At most one ReferenceType
// ever appears, as the outermost wrapper of a type.
type ReferenceType struct {
	ReferenceTo Type
}

func (*ReferenceType) isType() {}

func (n *ReferenceType) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitReferenceType(n) == Stop {
		return Stop
	}
	n.ReferenceTo.Walk(v, true)
	return Continue
}

// FunctionType is a function pointer type: `function *(...) params : Return`.
// The grammar requires at least one star, but that pointer wrapping is
// applied by the parser (see parser package), not stored redundantly here.
type FunctionType struct {
	Parameters []Type
	Return     Type
}

func (*FunctionType) isType() {}

func (n *FunctionType) Walk(v *Visitor, visitSelf bool) Result {
	if visitSelf && v.VisitFunctionType(n) == Stop {
		return Stop
	}
	for _, p := range n.Parameters {
		p.Walk(v, true)
	}
	if n.Return != nil {
		n.Return.Walk(v, true)
	}
	return Continue
}
