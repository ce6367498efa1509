package dump

import "github.com/coreclang/corec/ast"

// buildNode converts one ast.Node (and, recursively, its children) to
// its wire shape. A type switch over the closed node family is more
// direct here than routing through a Visitor: every case needs exactly
// one thing — this node's own label plus its children in order — with
// no branching behavior to override, which is what Visitor is for.
func buildNode(n ast.Node) Node {
	switch v := n.(type) {
	case *ast.Block:
		return Node{Type: "Block", Children: buildAll(v.Globals)}
	case *ast.Class:
		return Node{Type: "Class", Value: string(v.Name.Text), Children: buildAll(v.Members)}
	case *ast.Function:
		var children []Node
		for _, p := range v.Parameters {
			children = append(children, buildNode(p))
		}
		if v.ReturnType != nil {
			children = append(children, buildNode(v.ReturnType))
		}
		if v.Body != nil {
			children = append(children, buildNode(v.Body))
		}
		return Node{Type: "Function", Value: string(v.Name.Text), Children: children}
	case *ast.Parameter:
		children := []Node{buildNode(v.Type)}
		if v.InitialValue != nil {
			children = append(children, buildNode(v.InitialValue))
		}
		return Node{Type: "Parameter", Value: string(v.Name.Text), Children: children}
	case *ast.Variable:
		children := []Node{buildNode(v.Type)}
		if v.InitialValue != nil {
			children = append(children, buildNode(v.InitialValue))
		}
		return Node{Type: "Variable", Value: string(v.Name.Text), Children: children}
	case *ast.Scope:
		children := make([]Node, len(v.Statements))
		for i, s := range v.Statements {
			children[i] = buildNode(s)
		}
		return Node{Type: "Scope", Children: children}

	case *ast.NamedType:
		return Node{Type: "NamedType", Value: string(v.Name.Text)}
	case *ast.PointerType:
		return Node{Type: "PointerType", Children: []Node{buildNode(v.PointerTo)}}
	case *ast.ReferenceType:
		return Node{Type: "ReferenceType", Children: []Node{buildNode(v.ReferenceTo)}}
	case *ast.FunctionType:
		children := buildAll(toNodes(v.Parameters))
		if v.Return != nil {
			children = append(children, buildNode(v.Return))
		}
		return Node{Type: "FunctionType", Children: children}

	case *ast.If:
		children := []Node{buildNode(v.Condition), buildNode(v.Body)}
		if v.Else != nil {
			children = append(children, buildNode(v.Else))
		}
		return Node{Type: "If", Children: children}
	case *ast.While:
		return Node{Type: "While", Children: []Node{buildNode(v.Condition), buildNode(v.Body)}}
	case *ast.For:
		var children []Node
		if v.InitialVariable != nil {
			children = append(children, buildNode(v.InitialVariable))
		}
		if v.InitialExpression != nil {
			children = append(children, buildNode(v.InitialExpression))
		}
		if v.Condition != nil {
			children = append(children, buildNode(v.Condition))
		}
		if v.Body != nil {
			children = append(children, buildNode(v.Body))
		}
		if v.Iterator != nil {
			children = append(children, buildNode(v.Iterator))
		}
		return Node{Type: "For", Children: children}
	case *ast.Return:
		var children []Node
		if v.Value != nil {
			children = append(children, buildNode(v.Value))
		}
		return Node{Type: "Return", Children: children}
	case *ast.Break:
		return Node{Type: "Break"}
	case *ast.Continue:
		return Node{Type: "Continue"}
	case *ast.Label:
		return Node{Type: "Label", Value: string(v.Name.Text)}
	case *ast.Goto:
		return Node{Type: "Goto", Value: string(v.Name.Text)}
	case *ast.ExpressionStatement:
		return Node{Type: "ExpressionStatement", Children: []Node{buildNode(v.Value)}}

	case *ast.Literal:
		return Node{Type: "Literal", Value: string(v.Value.Text)}
	case *ast.NameReference:
		return Node{Type: "NameReference", Value: string(v.Name.Text)}
	case *ast.BinaryOperator:
		return Node{Type: "BinaryOperator", Value: string(v.Operator.Text), Children: []Node{buildNode(v.Left), buildNode(v.Right)}}
	case *ast.UnaryOperator:
		return Node{Type: "UnaryOperator", Value: string(v.Operator.Text), Children: []Node{buildNode(v.Right)}}
	case *ast.MemberAccess:
		return Node{Type: "MemberAccess", Value: string(v.Operator.Text) + string(v.Name.Text), Children: []Node{buildNode(v.Left)}}
	case *ast.Call:
		return Node{Type: "Call", Children: buildAll(append([]ast.Node{v.Left}, toNodes(v.Arguments)...))}
	case *ast.Cast:
		return Node{Type: "Cast", Children: []Node{buildNode(v.Left), buildNode(v.Type)}}
	case *ast.Index:
		return Node{Type: "Index", Children: []Node{buildNode(v.Left), buildNode(v.Value)}}

	default:
		return Node{Type: "Unknown"}
	}
}

func buildAll(nodes []ast.Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = buildNode(n)
	}
	return out
}

// toNodes widens a typed slice ([]ast.Type, []ast.Expression, ...) to
// []ast.Node so buildAll can walk it uniformly.
func toNodes[T ast.Node](items []T) []ast.Node {
	if len(items) == 0 {
		return nil
	}
	out := make([]ast.Node, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
