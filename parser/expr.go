package parser

import (
	"github.com/coreclang/corec/ast"
	"github.com/coreclang/corec/token"
)

// parseExpression is the entry point for expression grammar: level 0,
// assignment, right-associative and lowest-binding.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment parses `lhs = rhs`, recursing on the right so that
// `a = b = c` groups as `a = (b = c)`.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseLogicalOr()
	if op, ok := p.accept(p.grammar.Assign); ok {
		right := p.parseAssignment()
		return &ast.BinaryOperator{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseLogicalOr parses level 1: `||`, left-associative.
func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for {
		op, ok := p.accept(p.grammar.Or)
		if !ok {
			return left
		}
		left = &ast.BinaryOperator{Operator: op, Left: left, Right: p.parseLogicalAnd()}
	}
}

// parseLogicalAnd parses level 2: `&&`, left-associative.
func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseRelational()
	for {
		op, ok := p.accept(p.grammar.And)
		if !ok {
			return left
		}
		left = &ast.BinaryOperator{Operator: op, Left: left, Right: p.parseRelational()}
	}
}

// parseRelational parses level 3: `< <= > >= == !=`, left-associative.
func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()
	for {
		op, ok := p.acceptAny(p.grammar.Less, p.grammar.LessEqual, p.grammar.Greater,
			p.grammar.GreaterEqual, p.grammar.Equal, p.grammar.NotEqual)
		if !ok {
			return left
		}
		left = &ast.BinaryOperator{Operator: op, Left: left, Right: p.parseAdditive()}
	}
}

// parseAdditive parses level 4: `+ -`, left-associative.
func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for {
		op, ok := p.acceptAny(p.grammar.Plus, p.grammar.Minus)
		if !ok {
			return left
		}
		left = &ast.BinaryOperator{Operator: op, Left: left, Right: p.parseMultiplicative()}
	}
}

// parseMultiplicative parses level 5: `* / %`, left-associative.
func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for {
		op, ok := p.acceptAny(p.grammar.Star, p.grammar.Slash, p.grammar.Percent)
		if !ok {
			return left
		}
		left = &ast.BinaryOperator{Operator: op, Left: left, Right: p.parseUnary()}
	}
}

// parseUnary parses level 6: a chain of prefix operators applied to a
// postfix chain, right-associative (outermost operator wraps the rest):
// `*`, `&`, `+`, `-`, `!`, `++`, `--`.
func (p *Parser) parseUnary() ast.Expression {
	if op, ok := p.acceptAny(p.grammar.Star, p.grammar.Amp, p.grammar.Plus, p.grammar.Minus,
		p.grammar.Bang, p.grammar.Increment, p.grammar.Decrement); ok {
		return &ast.UnaryOperator{Operator: op, Right: p.parseUnary()}
	}
	return p.parsePostfix()
}

// parsePostfix parses level 7: a primary value followed by zero or more
// postfix links (`.name`, `->name`, `(args)`, `[index]`, `as Type`),
// left-associative — each link wraps the chain built so far.
func (p *Parser) parsePostfix() ast.Expression {
	left := p.parseValue()
	for {
		switch {
		case p.at(p.grammar.Dot) || p.at(p.grammar.Arrow):
			op := p.advance()
			name := p.expectName("a member name")
			left = &ast.MemberAccess{Operator: op, Left: left, Name: name}
		case p.at(p.grammar.LParen):
			p.advance()
			call := &ast.Call{Left: left}
			for !p.at(p.grammar.RParen) {
				call.Arguments = append(call.Arguments, p.parseExpression())
				if _, ok := p.accept(p.grammar.Comma); !ok {
					break
				}
			}
			p.expect(p.grammar.RParen, "')'")
			left = call
		case p.at(p.grammar.LBracket):
			p.advance()
			value := p.parseExpression()
			p.expect(p.grammar.RBracket, "']'")
			left = &ast.Index{Left: left, Value: value}
		case p.at(p.grammar.As):
			p.advance()
			left = &ast.Cast{Left: left, Type: p.parseType()}
		default:
			return left
		}
	}
}

// parseValue parses a literal, a name reference, or a parenthesized
// expression (which contributes no node of its own — it just changes
// what the surrounding grammar sees as one unit).
func (p *Parser) parseValue() ast.Expression {
	switch {
	case p.at(token.IntegerLiteral), p.at(token.FloatLiteral),
		p.at(token.StringLiteral), p.at(token.CharacterLiteral),
		p.at(p.grammar.True), p.at(p.grammar.False), p.at(p.grammar.Null):
		return &ast.Literal{Value: p.advance()}
	case p.at(token.Identifier):
		return &ast.NameReference{Name: p.advance()}
	case p.at(p.grammar.LParen):
		p.advance()
		inner := p.parseExpression()
		p.expect(p.grammar.RParen, "')'")
		return inner
	default:
		panic(p.failUnexpected("an expression", nil))
	}
}

// acceptAny consumes and returns the current token if its kind is any of
// kinds.
func (p *Parser) acceptAny(kinds ...token.Kind) (token.Token, bool) {
	cur := p.current().Kind
	for _, k := range kinds {
		if cur == k {
			return p.advance(), true
		}
	}
	return token.Token{}, false
}
