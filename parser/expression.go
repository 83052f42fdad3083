package parser

import (
	"strings"

	"github.com/ledgerspan/ledgerspan/ast"
	"github.com/shopspring/decimal"
)

// maxExprDepth bounds how deeply a NumberExpr may nest parentheses or
// unary-minus chains, guarding against stack exhaustion on adversarial or
// generated input.
const maxExprDepth = 64

// parseNumberExpr parses an arithmetic expression (`+ - * /`, unary minus,
// parentheses) over decimal literals, evaluating it with
// github.com/shopspring/decimal for arbitrary precision as it goes, and
// retaining the token tree for later re-rendering of synthesized nodes.
func (p *Parser) parseNumberExpr(depth int) (*ast.NumberExpr, error) {
	return p.parseAddSub(depth)
}

func (p *Parser) parseAddSub(depth int) (*ast.NumberExpr, error) {
	left, err := p.parseMulDiv(depth)
	if err != nil {
		return nil, err
	}

	for p.check(PLUS) || p.check(MINUS) {
		opTok := p.advance()
		kind := ast.OpAdd
		if opTok.Type == MINUS {
			kind = ast.OpSub
		}
		right, err := p.parseMulDiv(depth)
		if err != nil {
			return nil, err
		}
		left = p.combine(left, kind, right)
	}
	return left, nil
}

func (p *Parser) parseMulDiv(depth int) (*ast.NumberExpr, error) {
	left, err := p.parseUnary(depth)
	if err != nil {
		return nil, err
	}

	for p.check(ASTERISK) || p.check(SLASH) {
		opTok := p.advance()
		kind := ast.OpMul
		if opTok.Type == SLASH {
			kind = ast.OpDiv
		}
		right, err := p.parseUnary(depth)
		if err != nil {
			return nil, err
		}
		left = p.combine(left, kind, right)
	}
	return left, nil
}

func (p *Parser) parseUnary(depth int) (*ast.NumberExpr, error) {
	if p.check(MINUS) {
		depth++
		if depth > maxExprDepth {
			return nil, p.errorf(p.peek(), KindSemanticLocal, "expression nesting exceeds %d levels", maxExprDepth)
		}
		minusTok := p.advance()
		operand, err := p.parseUnary(depth)
		if err != nil {
			return nil, err
		}
		n := &ast.NumberExpr{Value: operand.Value.Neg(), Tree: ast.ExprUnary{Operand: treeOf(operand)}}
		p.span(n, minusTok.Start, operand.Span().End)
		return n, nil
	}

	if p.check(LPAREN) {
		depth++
		if depth > maxExprDepth {
			return nil, p.errorf(p.peek(), KindSemanticLocal, "expression nesting exceeds %d levels", maxExprDepth)
		}
		openTok := p.advance()
		inner, err := p.parseAddSub(depth)
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expect(RPAREN)
		if err != nil {
			return nil, err
		}
		n := &ast.NumberExpr{Value: inner.Value, Tree: parenthesize(treeOf(inner))}
		p.span(n, openTok.Start, closeTok.End)
		return n, nil
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*ast.NumberExpr, error) {
	tok, err := p.expect(NUMBER)
	if err != nil {
		return nil, err
	}
	raw := p.text(tok)
	d, parseErr := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if parseErr != nil {
		return nil, p.errorf(tok, KindSemanticLocal, "invalid number literal %q: %s", raw, parseErr)
	}
	n := &ast.NumberExpr{Value: d, Tree: ast.ExprLiteral{Raw: raw}}
	p.span(n, tok.Start, tok.End)
	return n, nil
}

// combine folds a binary operator application into a new NumberExpr,
// evaluating it immediately and recording the operator/operand tree for
// synthesized rendering.
func (p *Parser) combine(left *ast.NumberExpr, kind ast.BinaryOpKind, right *ast.NumberExpr) *ast.NumberExpr {
	var value decimal.Decimal
	switch kind {
	case ast.OpAdd:
		value = left.Value.Add(right.Value)
	case ast.OpSub:
		value = left.Value.Sub(right.Value)
	case ast.OpMul:
		value = left.Value.Mul(right.Value)
	case ast.OpDiv:
		if right.Value.IsZero() {
			value = decimal.Zero
		} else {
			value = left.Value.DivRound(right.Value, 28)
		}
	}
	n := &ast.NumberExpr{
		Value: value,
		Tree:  ast.ExprBinary{Left: treeOf(left), Op: kind, Right: treeOf(right)},
	}
	p.span(n, left.Span().Start, right.Span().End)
	return n
}

// treeOf returns the raw token tree for a NumberExpr, falling back to a
// literal of its decimal value if none was recorded (never the case for
// parser-produced expressions, but defensive for hand-built ones).
func treeOf(n *ast.NumberExpr) ast.ExprNode {
	if n.Tree != nil {
		return n.Tree
	}
	return ast.ExprLiteral{Raw: n.Value.String()}
}

func parenthesize(n ast.ExprNode) ast.ExprNode {
	if b, ok := n.(ast.ExprBinary); ok {
		b.Parenthesized = true
		return b
	}
	return n
}
