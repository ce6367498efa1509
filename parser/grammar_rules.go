package parser

import (
	"github.com/coreclang/corec/ast"
)

// parseBlock parses a whole source file: zero or more top-level
// declarations (class, function, var), each terminated the way its own
// production requires.
func (p *Parser) parseBlock() *ast.Block {
	b := &ast.Block{}
	for !p.atEnd() {
		b.Globals = append(b.Globals, p.parseGlobal())
	}
	return b
}

func (p *Parser) parseGlobal() ast.Node {
	switch {
	case p.at(p.grammar.Class):
		return p.parseClass()
	case p.at(p.grammar.Function):
		return p.parseFunction()
	case p.at(p.grammar.Var):
		return p.parseVariable()
	default:
		panic(p.failUnexpected("a class, function, or var declaration", []string{"class", "function", "var"}))
	}
}

// parseClass parses `class Name { member* }` where each member is a
// function or a variable declaration.
func (p *Parser) parseClass() *ast.Class {
	p.expect(p.grammar.Class, "'class'")
	name := p.expectName("a class name")
	p.expect(p.grammar.LBrace, "'{'")

	c := &ast.Class{Name: name}
	for !p.at(p.grammar.RBrace) {
		switch {
		case p.at(p.grammar.Function):
			c.Members = append(c.Members, p.parseFunction())
		case p.at(p.grammar.Var):
			c.Members = append(c.Members, p.parseVariable())
		default:
			panic(p.failUnexpected("a member function or variable", []string{"function", "var"}))
		}
	}
	p.expect(p.grammar.RBrace, "'}'")
	return c
}

// parseFunction parses `function name(params) : returnType? scope`. The
// return type is optional; when absent the function is void.
func (p *Parser) parseFunction() *ast.Function {
	p.expect(p.grammar.Function, "'function'")
	name := p.expectName("a function name")
	p.expect(p.grammar.LParen, "'('")

	fn := &ast.Function{Name: name}
	for !p.at(p.grammar.RParen) {
		fn.Parameters = append(fn.Parameters, p.parseParameter())
		if _, ok := p.accept(p.grammar.Comma); !ok {
			break
		}
	}
	p.expect(p.grammar.RParen, "')'")

	if _, ok := p.accept(p.grammar.Colon); ok {
		fn.ReturnType = p.parseType()
	}
	fn.Body = p.parseScope()
	return fn
}

// parseParameter parses `name : type (= initialValue)?`.
func (p *Parser) parseParameter() *ast.Parameter {
	name := p.expectName("a parameter name")
	p.expect(p.grammar.Colon, "':'")
	typ := p.parseType()

	param := &ast.Parameter{Name: name, Type: typ}
	if _, ok := p.accept(p.grammar.Assign); ok {
		param.InitialValue = p.parseExpression()
	}
	return param
}

// parseVariable parses `var name : type (= initialValue)? ;`.
func (p *Parser) parseVariable() *ast.Variable {
	p.expect(p.grammar.Var, "'var'")
	name := p.expectName("a variable name")
	p.expect(p.grammar.Colon, "':'")
	typ := p.parseType()

	v := &ast.Variable{Name: name, Type: typ}
	if _, ok := p.accept(p.grammar.Assign); ok {
		v.InitialValue = p.parseExpression()
	}
	p.expect(p.grammar.Semicolon, "';'")
	return v
}

// parseType parses a type: a named type or function type, optionally
// followed by one or more '*' (pointer wrapping, innermost first) and at
// most one trailing '&' (reference wrapping, outermost).
func (p *Parser) parseType() ast.Type {
	var t ast.Type
	switch {
	case p.at(p.grammar.Function):
		t = p.parseFunctionType()
	default:
		name := p.expectName("a type name")
		t = &ast.NamedType{Name: name}
	}

	for {
		if _, ok := p.accept(p.grammar.Star); ok {
			t = &ast.PointerType{PointerTo: t}
			continue
		}
		break
	}
	if _, ok := p.accept(p.grammar.Amp); ok {
		t = &ast.ReferenceType{ReferenceTo: t}
	}
	return t
}

// parseFunctionType parses `function * ** &? ( paramType,* ) : returnType?`:
// one mandatory '*', zero or more extra '*', and an optional trailing '&',
// all before the parameter list. The parsed FunctionType is then wrapped
// in that many PointerType layers (innermost first) and, if '&' was
// present, one outermost ReferenceType.
func (p *Parser) parseFunctionType() ast.Type {
	p.expect(p.grammar.Function, "'function'")
	p.expect(p.grammar.Star, "'*'")
	stars := 1
	for {
		if _, ok := p.accept(p.grammar.Star); ok {
			stars++
			continue
		}
		break
	}
	_, hasRef := p.accept(p.grammar.Amp)

	p.expect(p.grammar.LParen, "'('")

	ft := &ast.FunctionType{}
	for !p.at(p.grammar.RParen) {
		ft.Parameters = append(ft.Parameters, p.parseType())
		if _, ok := p.accept(p.grammar.Comma); !ok {
			break
		}
	}
	p.expect(p.grammar.RParen, "')'")

	if _, ok := p.accept(p.grammar.Colon); ok {
		ft.Return = p.parseType()
	}

	var t ast.Type = ft
	for i := 0; i < stars; i++ {
		t = &ast.PointerType{PointerTo: t}
	}
	if hasRef {
		t = &ast.ReferenceType{ReferenceTo: t}
	}
	return t
}

// parseScope parses `{ statement* }`.
func (p *Parser) parseScope() *ast.Scope {
	p.expect(p.grammar.LBrace, "'{'")
	s := &ast.Scope{}
	for !p.at(p.grammar.RBrace) {
		s.Statements = append(s.Statements, p.parseStatement())
	}
	p.expect(p.grammar.RBrace, "'}'")
	return s
}

// parseStatement dispatches on the current token's kind to the
// production for each statement form the grammar supports.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.at(p.grammar.Var):
		return p.parseVariable()
	case p.at(p.grammar.If):
		return p.parseIf()
	case p.at(p.grammar.While):
		return p.parseWhile()
	case p.at(p.grammar.For):
		return p.parseFor()
	case p.at(p.grammar.Return):
		return p.parseReturn()
	case p.at(p.grammar.Break):
		p.advance()
		p.expect(p.grammar.Semicolon, "';'")
		return &ast.Break{}
	case p.at(p.grammar.Continue):
		p.advance()
		p.expect(p.grammar.Semicolon, "';'")
		return &ast.Continue{}
	case p.at(p.grammar.Label):
		p.advance()
		name := p.expectName("a label name")
		p.expect(p.grammar.Semicolon, "';'")
		return &ast.Label{Name: name}
	case p.at(p.grammar.Goto):
		p.advance()
		name := p.expectName("a label name")
		p.expect(p.grammar.Semicolon, "';'")
		return &ast.Goto{Name: name}
	default:
		expr := p.parseExpression()
		p.expect(p.grammar.Semicolon, "';'")
		return &ast.ExpressionStatement{Value: expr}
	}
}

// parseIf parses `if (cond) scope (else (if ... | scope))?`.
func (p *Parser) parseIf() *ast.If {
	p.expect(p.grammar.If, "'if'")
	p.expect(p.grammar.LParen, "'('")
	cond := p.parseExpression()
	p.expect(p.grammar.RParen, "')'")
	body := p.parseScope()

	n := &ast.If{Condition: cond, Body: body}
	if _, ok := p.accept(p.grammar.Else); ok {
		if p.at(p.grammar.If) {
			n.Else = p.parseIf()
		} else {
			n.Else = p.parseScope()
		}
	}
	return n
}

// parseWhile parses `while (cond) scope`.
func (p *Parser) parseWhile() *ast.While {
	p.expect(p.grammar.While, "'while'")
	p.expect(p.grammar.LParen, "'('")
	cond := p.parseExpression()
	p.expect(p.grammar.RParen, "')'")
	body := p.parseScope()
	return &ast.While{Condition: cond, Body: body}
}

// parseFor parses `for (init?; cond?; iter?) scope`. init is either a
// var declaration (without its own terminating semicolon consumed
// twice) or a bare expression; both, and cond/iter, are optional.
func (p *Parser) parseFor() *ast.For {
	p.expect(p.grammar.For, "'for'")
	p.expect(p.grammar.LParen, "'('")

	n := &ast.For{}
	if !p.at(p.grammar.Semicolon) {
		if p.at(p.grammar.Var) {
			n.InitialVariable = p.parseVariable() // consumes its own ';'
		} else {
			n.InitialExpression = p.parseExpression()
			p.expect(p.grammar.Semicolon, "';'")
		}
	} else {
		p.expect(p.grammar.Semicolon, "';'")
	}

	if !p.at(p.grammar.Semicolon) {
		n.Condition = p.parseExpression()
	}
	p.expect(p.grammar.Semicolon, "';'")

	if !p.at(p.grammar.RParen) {
		n.Iterator = p.parseExpression()
	}
	p.expect(p.grammar.RParen, "')'")

	n.Body = p.parseScope()
	return n
}

// parseReturn parses `return expr? ;`.
func (p *Parser) parseReturn() *ast.Return {
	p.expect(p.grammar.Return, "'return'")
	n := &ast.Return{}
	if !p.at(p.grammar.Semicolon) {
		n.Value = p.parseExpression()
	}
	p.expect(p.grammar.Semicolon, "';'")
	return n
}
