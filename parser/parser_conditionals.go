package parser

import "github.com/mihaipopescu/pseudocod/lexer"

// parseIf implements:
//
//	daca expr atunci
//	  BLOCK
//	[altfel
//	  BLOCK]
//
// altfel, when present, sits at the same indentation as daca itself
// (level), not one level deeper like the blocks it introduces. After
// the then-block dedents back to level, the parser has to look one
// token past the dedenting NEWLINE to tell whether that NEWLINE
// belongs to an altfel clause of this if or to whatever follows the
// if in the enclosing block; that is exactly what Parser.peek exists
// for.
func (p *Parser) parseIf(level int) (Statement, error) {
	p.advance() // daca
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.ATUNCI, "'atunci'"); err != nil {
		return nil, err
	}
	if err := p.expectBlockNewline(level + 1); err != nil {
		return nil, err
	}
	p.advance()
	thenBlock, err := p.parseBlock(level + 1)
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.INVALID {
		return nil, p.errBadIndentation("indentation with spaces only")
	}

	var elseBlock Block
	if p.cur.Type == lexer.NEWLINE && p.cur.Indent == 2*level && p.peek.Type == lexer.ALTFEL {
		p.advance() // consume the NEWLINE, cur is now altfel
		p.advance() // consume altfel
		if err := p.expectBlockNewline(level + 1); err != nil {
			return nil, err
		}
		p.advance()
		elseBlock, err = p.parseBlock(level + 1)
		if err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.INVALID {
			return nil, p.errBadIndentation("indentation with spaces only")
		}
	}

	return &If{Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}
