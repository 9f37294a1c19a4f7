package parser

import (
	"strconv"

	"github.com/mihaipopescu/pseudocod/errs"
	"github.com/mihaipopescu/pseudocod/lexer"
)

// parseExpr implements expr := member (relop member)*. Relational
// operators do not chain: the grammar folds them left-associatively
// just like the arithmetic levels below, so "a < b < c" parses as
// (a < b) < c rather than being rejected or given short-circuit
// semantics.
func (p *Parser) parseExpr() (Expression, error) {
	left, err := p.parseMember()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := compareOpFor(p.cur.Type)
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		left = &Compare{Op: op, Left: left, Right: right}
	}
}

func compareOpFor(t lexer.TokenType) (CompareOp, bool) {
	switch t {
	case lexer.LE:
		return OpLE, true
	case lexer.GE:
		return OpGE, true
	case lexer.LT:
		return OpLT, true
	case lexer.GT:
		return OpGT, true
	case lexer.EQ:
		return OpEQ, true
	default:
		return "", false
	}
}

// parseMember implements member := ['-'] term (('+'|'-') term)*. A
// leading minus negates the first term only; it then joins the same
// left-associative +/- fold as every subsequent term, so "-a+b" is
// (-a)+b and "-a-b" is (-a)-b.
func (p *Parser) parseMember() (Expression, error) {
	negate := false
	if p.cur.Type == lexer.MINUS {
		negate = true
		p.advance()
	}
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if negate {
		left = &Neg{X: left}
	}
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := BinaryOp(p.cur.Type)
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm implements term := factor (('*'|'/'|'%') factor)*.
func (p *Parser) parseTerm() (Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.PERCENT {
		op := BinaryOp(p.cur.Type)
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor implements factor := INT | IDENT | '(' expr ')'.
// Integer literals are range-checked against 32-bit unsigned here; the
// lexer itself only ever scans a raw run of digits.
func (p *Parser) parseFactor() (Expression, error) {
	switch p.cur.Type {
	case lexer.INT:
		lit := p.cur.Literal
		n, err := strconv.ParseUint(lit, 10, 32)
		if err != nil {
			return nil, &errs.ParseError{
				Kind:     errs.LiteralOverflow,
				Line:     p.cur.Line,
				Column:   p.cur.Column,
				Expected: "an integer literal that fits in 32 bits",
				Found:    lit,
			}
		}
		p.advance()
		return &Constant{Value: int32(n)}, nil
	case lexer.IDENT:
		name := p.cur.Literal
		p.advance()
		return &Variable{Name: name}, nil
	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectAdvance(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errUnexpected("a number, a variable, or '('")
	}
}
