package parser

import "github.com/mihaipopescu/pseudocod/lexer"

// parseWhile implements `cat timp expr executa` followed by a body
// block; the condition is checked before every iteration, including
// the first, so the loop simply ends via a normal dedent with no
// trailing keyword.
func (p *Parser) parseWhile(level int) (Statement, error) {
	p.advance() // cat
	if err := p.expectAdvance(lexer.TIMP, "'timp'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.EXECUTA, "'executa'"); err != nil {
		return nil, err
	}
	body, err := p.parseHeaderBody(level)
	if err != nil {
		return nil, err
	}
	return &Loop{Kind: While, Cond: cond, Body: body}, nil
}

// parseDoWhile implements:
//
//	executa
//	  BLOCK
//	cat timp expr
//
// The body always runs once; cat timp then sits at the same level as
// executa and its condition governs whether the body runs again.
func (p *Parser) parseDoWhile(level int) (Statement, error) {
	p.advance() // executa
	body, err := p.parseHeaderBody(level)
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminatorNewline(level, "'cat timp'"); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.CAT, "'cat'"); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.TIMP, "'timp'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Loop{Kind: DoWhile, Cond: cond, Body: body}, nil
}

// parseRepeat implements:
//
//	repeta
//	  BLOCK
//	pana cand expr
//
// The body always runs once; pana cand sits at the same level as
// repeta. Unlike DoWhile, the loop continues while the condition is
// false and stops once it becomes true.
func (p *Parser) parseRepeat(level int) (Statement, error) {
	p.advance() // repeta
	body, err := p.parseHeaderBody(level)
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminatorNewline(level, "'pana cand'"); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.PANA, "'pana'"); err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.CAND, "'cand'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Loop{Kind: Repeat, Cond: cond, Body: body}, nil
}

// parseFor implements `pentru IDENT '<-' expr ',' expr [',' expr] executa`
// followed by a body block. Step defaults to Constant{1} when omitted.
func (p *Parser) parseFor(level int) (Statement, error) {
	p.advance() // pentru
	if p.cur.Type != lexer.IDENT {
		return nil, p.errUnexpected("a loop variable name")
	}
	name := p.cur.Literal
	p.advance()
	if err := p.expectAdvance(lexer.ARROW, "'<-'"); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.COMMA, "','"); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var step Expression = &Constant{Value: 1}
	if p.cur.Type == lexer.COMMA {
		p.advance()
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectAdvance(lexer.EXECUTA, "'executa'"); err != nil {
		return nil, err
	}
	body, err := p.parseHeaderBody(level)
	if err != nil {
		return nil, err
	}
	return &For{Var: name, Start: start, End: end, Step: step, Body: body}, nil
}

// expectTerminatorNewline requires the dedent that ends a do-while or
// repeat body to land back exactly at the loop's own level, where its
// mandatory trailing keyword (cat timp / pana cand) lives, and
// consumes it. Unlike altfel, this keyword is not optional, so no
// peek-ahead is needed: anything other than the expected dedent is an
// error rather than a sign that the clause is simply absent.
func (p *Parser) expectTerminatorNewline(level int, expected string) error {
	if p.cur.Type == lexer.INVALID {
		return p.errBadIndentation("indentation with spaces only")
	}
	if p.cur.Type != lexer.NEWLINE || p.cur.Indent != 2*level {
		return p.errUnexpected(expected)
	}
	p.advance()
	return nil
}

// parseHeaderBody parses the mandatory body block that follows a
// loop's opening header, at level+1, and rejects a stray tab found
// while the caller is about to interpret whatever dedent follows.
func (p *Parser) parseHeaderBody(level int) (Block, error) {
	if err := p.expectBlockNewline(level + 1); err != nil {
		return nil, err
	}
	p.advance()
	body, err := p.parseBlock(level + 1)
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.INVALID {
		return nil, p.errBadIndentation("indentation with spaces only")
	}
	return body, nil
}
