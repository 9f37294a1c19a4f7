package lexer

// Lexer scans pseudocod source text into tokens one at a time. It
// keeps just enough state to report 1-indexed line/column positions
// and to fold an arbitrary run of blank lines and trailing spaces
// into a single NEWLINE token carrying the indentation of whatever
// statement follows it.
type Lexer struct {
	src    string
	pos    int  // index of ch within src
	ch     byte // byte currently under the cursor, 0 at end of input
	line   int
	column int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, line: 1, column: 1}
	if len(src) > 0 {
		l.ch = src[0]
	}
	return l
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	if l.pos >= len(l.src) {
		l.ch = 0
		l.pos = len(l.src)
		return
	}
	l.ch = l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }
func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool      { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

// skipHorizontalSpace discards spaces and tabs within the current
// logical line: horizontal whitespace around tokens is insignificant
// and never delimits anything.
func (l *Lexer) skipHorizontalSpace() {
	for isSpaceOrTab(l.ch) {
		l.advance()
	}
}

// NextToken returns the next token in the stream. The returned Token
// embeds the line/column at which it starts.
func (l *Lexer) NextToken() Token {
	l.skipHorizontalSpace()

	if l.ch == '\n' {
		return l.scanNewline()
	}

	line, col := l.line, l.column

	switch {
	case l.ch == 0:
		return Token{Type: EOF, Literal: "", Line: line, Column: col}
	case l.ch == '<':
		if l.peek() == '-' {
			l.advance()
			l.advance()
			return Token{Type: ARROW, Literal: "<-", Line: line, Column: col}
		}
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return Token{Type: LE, Literal: "<=", Line: line, Column: col}
		}
		l.advance()
		return Token{Type: LT, Literal: "<", Line: line, Column: col}
	case l.ch == '>':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return Token{Type: GE, Literal: ">=", Line: line, Column: col}
		}
		l.advance()
		return Token{Type: GT, Literal: ">", Line: line, Column: col}
	case l.ch == '=':
		l.advance()
		return Token{Type: EQ, Literal: "=", Line: line, Column: col}
	case l.ch == '+':
		l.advance()
		return Token{Type: PLUS, Literal: "+", Line: line, Column: col}
	case l.ch == '-':
		l.advance()
		return Token{Type: MINUS, Literal: "-", Line: line, Column: col}
	case l.ch == '*':
		l.advance()
		return Token{Type: STAR, Literal: "*", Line: line, Column: col}
	case l.ch == '/':
		l.advance()
		return Token{Type: SLASH, Literal: "/", Line: line, Column: col}
	case l.ch == '%':
		l.advance()
		return Token{Type: PERCENT, Literal: "%", Line: line, Column: col}
	case l.ch == '(':
		l.advance()
		return Token{Type: LPAREN, Literal: "(", Line: line, Column: col}
	case l.ch == ')':
		l.advance()
		return Token{Type: RPAREN, Literal: ")", Line: line, Column: col}
	case l.ch == ',':
		l.advance()
		return Token{Type: COMMA, Literal: ",", Line: line, Column: col}
	case l.ch == '\'':
		return l.scanString(line, col)
	case isDigit(l.ch):
		return l.scanNumber(line, col)
	case isAlpha(l.ch):
		return l.scanIdent(line, col)
	default:
		lit := string(l.ch)
		l.advance()
		return Token{Type: INVALID, Literal: lit, Line: line, Column: col}
	}
}

// scanNewline consumes the current newline plus every subsequent run
// of blank lines and leading spaces, stopping at the first line that
// holds real content (or at end of input). The returned token's Indent
// is the number of spaces immediately preceding that content. A tab
// found anywhere in that final indentation run is reported as an
// INVALID token: tabs are never a valid indentation unit.
func (l *Lexer) scanNewline() Token {
	line, col := l.line, l.column
	for l.ch == '\n' {
		l.advance()
		indent := 0
		sawTab := false
		for isSpaceOrTab(l.ch) {
			if l.ch == '\t' {
				sawTab = true
			} else {
				indent++
			}
			l.advance()
		}
		if l.ch == '\n' {
			// Blank (or whitespace-only) line: keep absorbing.
			continue
		}
		if sawTab {
			return Token{Type: INVALID, Literal: "\t", Line: l.line, Column: l.column}
		}
		return Token{Type: NEWLINE, Literal: "\n", Line: line, Column: col, Indent: indent}
	}
	// Unreachable: the loop only exits via return, but satisfies the
	// compiler for the degenerate case where ch stopped being '\n'
	// before the loop body ran (never happens given the caller check).
	return Token{Type: NEWLINE, Literal: "\n", Line: line, Column: col}
}

func (l *Lexer) scanNumber(line, col int) Token {
	start := l.pos
	for isDigit(l.ch) {
		l.advance()
	}
	return Token{Type: INT, Literal: l.src[start:l.pos], Line: line, Column: col}
}

func (l *Lexer) scanIdent(line, col int) Token {
	start := l.pos
	for isAlphaNumeric(l.ch) {
		l.advance()
	}
	word := l.src[start:l.pos]
	return Token{Type: lookupIdent(word), Literal: word, Line: line, Column: col}
}

// scanString consumes a 'single quoted' literal. There is no escape
// processing: any byte other than ' is copied through verbatim.
func (l *Lexer) scanString(line, col int) Token {
	l.advance() // opening quote
	start := l.pos
	for l.ch != '\'' && l.ch != 0 {
		l.advance()
	}
	text := l.src[start:l.pos]
	if l.ch == '\'' {
		l.advance()
	}
	return Token{Type: STRING, Literal: text, Line: line, Column: col}
}
