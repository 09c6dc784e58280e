// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluator

import (
	"fmt"
	"math"
)

// node is an arithmetic expression tree node.
type node interface {
	eval() float64
}

type numberNode float64

func (n numberNode) eval() float64 { return float64(n) }

type negNode struct{ x node }

func (n negNode) eval() float64 { return -n.x.eval() }

type sqrtNode struct{ x node }

func (n sqrtNode) eval() float64 { return math.Sqrt(n.x.eval()) }

type binaryNode struct {
	op   tokenKind
	l, r node
}

func (n binaryNode) eval() float64 {
	l, r := n.l.eval(), n.r.eval()
	switch n.op {
	case tokPlus:
		return l + r
	case tokMinus:
		return l - r
	case tokStar:
		return l * r
	case tokSlash:
		return l / r
	case tokCaret:
		return math.Pow(l, r)
	}
	return math.NaN()
}

// parser is a recursive-descent parser over the closed grammar:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary | implicit)*
//	unary   := ('+'|'-') unary | power
//	power   := primary ('^' unary)?
//	primary := number | pi | e | '(' expr ')'
//	         | sqrt primary | pow '(' expr ',' expr ')'
//
// An implicit product is a juxtaposed operand that does not start with a
// number ("2pi", "8(…)", "(a)(b)").
type parser struct {
	toks     []token
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) error {
	t := p.next()
	if t.kind != kind {
		return fmt.Errorf("%w: expected %s, found %s at %d", ErrSyntax, kind, t.kind, t.pos)
	}
	return nil
}

// enter guards recursion depth; every recursive production calls it.
func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrTooDeep, p.maxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parse() (node, error) {
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s at %d", ErrSyntax, t.kind, t.pos)
	}
	return n, nil
}

func (p *parser) expr() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, l: left, r: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		switch {
		case op == tokStar || op == tokSlash:
			p.next()
		case startsImplicitOperand(op):
			op = tokStar
		default:
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, l: left, r: right}
	}
}

func startsImplicitOperand(k tokenKind) bool {
	switch k {
	case tokLParen, tokPi, tokE, tokSqrt, tokPow:
		return true
	}
	return false
}

func (p *parser) unary() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.peek().kind {
	case tokMinus:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negNode{x: x}, nil
	case tokPlus:
		p.next()
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokCaret, l: base, r: exp}, nil
}

func (p *parser) primary() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	t := p.next()
	switch t.kind {
	case tokNumber:
		return numberNode(t.value), nil
	case tokPi:
		return numberNode(math.Pi), nil
	case tokE:
		return numberNode(math.E), nil
	case tokLParen:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return n, nil
	case tokSqrt:
		// "sqrt(x)" and the prefix form "√x" both land here.
		x, err := p.primary()
		if err != nil {
			return nil, err
		}
		return sqrtNode{x: x}, nil
	case tokPow:
		if err := p.expect(tokLParen); err != nil {
			return nil, err
		}
		base, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokComma); err != nil {
			return nil, err
		}
		exp, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return binaryNode{op: tokCaret, l: base, r: exp}, nil
	}
	return nil, fmt.Errorf("%w: unexpected %s at %d", ErrSyntax, t.kind, t.pos)
}
