package parser

import "github.com/mihaipopescu/pseudocod/lexer"

// parseRead implements `citeste IDENT (',' IDENT)*`.
func (p *Parser) parseRead() (Statement, error) {
	p.advance() // citeste
	var vars []string
	for {
		if p.cur.Type != lexer.IDENT {
			return nil, p.errUnexpected("a variable name")
		}
		vars = append(vars, p.cur.Literal)
		p.advance()
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	return &Read{Vars: vars}, nil
}

// parseWrite implements `scrie writable (',' writable)*`.
func (p *Parser) parseWrite() (Statement, error) {
	p.advance() // scrie
	var items []Writable
	for {
		item, err := p.parseWritable()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	return &Write{Items: items}, nil
}

// parseWritable is a string literal rendered verbatim, or any
// expression rendered as a decimal integer.
func (p *Parser) parseWritable() (Writable, error) {
	if p.cur.Type == lexer.STRING {
		text := p.cur.Literal
		p.advance()
		return StringWritable{Text: text}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ExprWritable{Expr: expr}, nil
}

// parseAssign implements `IDENT '<-' expr`. It is only reached when
// cur is already known to be IDENT, so the statement dispatcher never
// needs a second token of lookahead to distinguish it from the other
// forms.
func (p *Parser) parseAssign() (Statement, error) {
	name := p.cur.Literal
	p.advance()
	if err := p.expectAdvance(lexer.ARROW, "'<-'"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Assign{Name: name, Expr: expr}, nil
}
