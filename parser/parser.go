package parser

import (
	"github.com/mihaipopescu/pseudocod/errs"
	"github.com/mihaipopescu/pseudocod/lexer"
)

// Parser consumes tokens from a lexer.Lexer and builds a Program. It
// keeps a two-token lookahead (cur, peek): most productions only need
// cur, but deciding whether a daca's altfel clause belongs to the
// statement being parsed or to the enclosing block requires seeing one
// token past the dedenting NEWLINE without consuming it.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser positioned at the first token of src's token
// stream, with peek already primed.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.peek = p.lex.NextToken()
	p.advance()
	return p
}

// Parse lexes and parses src into a Program, or returns the first
// *errs.ParseError encountered.
func Parse(src string) (*Program, error) {
	p := New(lexer.New(src))
	block, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}
	return &Program{Statements: block}, nil
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errUnexpected(expected string) *errs.ParseError {
	return &errs.ParseError{
		Kind:     errs.UnexpectedToken,
		Line:     p.cur.Line,
		Column:   p.cur.Column,
		Expected: expected,
		Found:    p.cur.String(),
	}
}

func (p *Parser) errBadIndentation(expected string) *errs.ParseError {
	return &errs.ParseError{
		Kind:     errs.BadIndentation,
		Line:     p.cur.Line,
		Column:   p.cur.Column,
		Expected: expected,
		Found:    p.cur.String(),
	}
}

// expectAdvance fails unless cur.Type == t, otherwise consumes it.
func (p *Parser) expectAdvance(t lexer.TokenType, expected string) error {
	if p.cur.Type != t {
		return p.errUnexpected(expected)
	}
	p.advance()
	return nil
}

// expectBlockNewline fails unless cur is a NEWLINE whose Indent equals
// the indentation a block at level must start at, i.e. 2*level
// columns. A NEWLINE token can never appear with a mismatched Indent
// here and be valid: this is only ever called right after a header
// keyword (atunci/altfel/executa, including cat timp's and pentru's
// executa), where a block body is mandatory.
func (p *Parser) expectBlockNewline(level int) error {
	if p.cur.Type == lexer.INVALID {
		return p.errBadIndentation("indentation with spaces only")
	}
	want := 2 * level
	if p.cur.Type != lexer.NEWLINE || p.cur.Indent != want {
		return p.errBadIndentation(indentDescription(want))
	}
	return nil
}

func indentDescription(spaces int) string {
	if spaces == 0 {
		return "a statement at the top level"
	}
	return "a statement indented to match the enclosing block"
}

// parseTopLevel parses the whole program as a Block at level 0. Unlike
// a nested block, the first statement has no leading NEWLINE to
// consume (there is nothing before it), and there is no terminator
// keyword that can legally follow a dedent: a final NEWLINE (trailing
// blank lines and spaces) is skipped, and any other leftover, non-EOF
// token after the block is rejected as trailing garbage.
func (p *Parser) parseTopLevel() (Block, error) {
	block, err := p.parseBlock(0)
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.INVALID {
		return nil, p.errBadIndentation("indentation with spaces only")
	}
	if p.cur.Type == lexer.NEWLINE && p.peek.Type == lexer.EOF {
		p.advance()
	}
	if p.cur.Type != lexer.EOF {
		return nil, &errs.ParseError{
			Kind:     errs.TrailingGarbage,
			Line:     p.cur.Line,
			Column:   p.cur.Column,
			Expected: "end of program",
			Found:    p.cur.String(),
		}
	}
	return block, nil
}

// parseBlock parses one or more statements sharing indentation level
// level, stopping as soon as a NEWLINE with a different Indent (or a
// NEWLINE that only precedes EOF, or EOF, or an INVALID token) is
// seen. It never consumes that terminating token: the caller (an
// enclosing parseBlock loop, or a daca/executa/repeta header that
// checks for its own trailing keyword) decides what it means.
func (p *Parser) parseBlock(level int) (Block, error) {
	stmt, err := p.parseStatement(level)
	if err != nil {
		return nil, err
	}
	stmts := Block{stmt}
	for p.cur.Type == lexer.NEWLINE && p.cur.Indent == 2*level && p.peek.Type != lexer.EOF {
		p.advance()
		stmt, err := p.parseStatement(level)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement dispatches on cur's token type to the one statement
// production it can start.
func (p *Parser) parseStatement(level int) (Statement, error) {
	switch p.cur.Type {
	case lexer.CITESTE:
		return p.parseRead()
	case lexer.SCRIE:
		return p.parseWrite()
	case lexer.IDENT:
		return p.parseAssign()
	case lexer.DACA:
		return p.parseIf(level)
	case lexer.CAT:
		return p.parseWhile(level)
	case lexer.EXECUTA:
		return p.parseDoWhile(level)
	case lexer.REPETA:
		return p.parseRepeat(level)
	case lexer.PENTRU:
		return p.parseFor(level)
	default:
		return nil, p.errUnexpected("a statement")
	}
}
