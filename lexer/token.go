// Package lexer turns pseudocod source text into a stream of tokens.
//
// The grammar is whitespace-sensitive: blocks are delimited purely by
// indentation (two spaces per nesting level), so the lexer is also
// responsible for measuring the indentation that precedes each new
// logical line and handing it to the parser as part of the NEWLINE
// token rather than discarding it the way a brace-delimited language
// would.
package lexer

import "fmt"

// TokenType identifies the lexical category of a Token.
type TokenType string

// Token type constants. Keyword tokens carry the literal Romanian
// keyword as their Type value so error messages can name the expected
// keyword directly.
const (
	EOF     TokenType = "EOF"
	INVALID TokenType = "INVALID"

	// NEWLINE marks a line break together with the indentation (run of
	// spaces) that immediately precedes the next token. Blank lines and
	// trailing horizontal whitespace are absorbed into the same token;
	// only the indentation of the next non-blank line is recorded.
	NEWLINE TokenType = "NEWLINE"

	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"

	ARROW TokenType = "<-"

	LE TokenType = "<="
	GE TokenType = ">="
	LT TokenType = "<"
	GT TokenType = ">"
	EQ TokenType = "="

	PLUS    TokenType = "+"
	MINUS   TokenType = "-"
	STAR    TokenType = "*"
	SLASH   TokenType = "/"
	PERCENT TokenType = "%"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	COMMA  TokenType = ","
	QUOTE  TokenType = "'"

	CITESTE TokenType = "citeste"
	SCRIE   TokenType = "scrie"
	DACA    TokenType = "daca"
	ATUNCI  TokenType = "atunci"
	ALTFEL  TokenType = "altfel"
	CAT     TokenType = "cat"
	TIMP    TokenType = "timp"
	EXECUTA TokenType = "executa"
	REPETA  TokenType = "repeta"
	PANA    TokenType = "pana"
	CAND    TokenType = "cand"
	PENTRU  TokenType = "pentru"
)

// keywords maps reserved words to their token type. An identifier that
// matches one of these must never be returned as IDENT: the lexer
// consults this table before deciding a scanned word is a user name.
var keywords = map[string]TokenType{
	"citeste": CITESTE,
	"scrie":   SCRIE,
	"daca":    DACA,
	"atunci":  ATUNCI,
	"altfel":  ALTFEL,
	"cat":     CAT,
	"timp":    TIMP,
	"executa": EXECUTA,
	"repeta":  REPETA,
	"pana":    PANA,
	"cand":    CAND,
	"pentru":  PENTRU,
}

// Token is a single lexical unit together with its source position.
// Line and Column are 1-indexed and point at the first character of
// Literal; NEWLINE tokens additionally carry the Indent of the line
// that follows them.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
	Indent  int // only meaningful when Type == NEWLINE
}

// String renders a token for error messages and test failures.
func (t Token) String() string {
	if t.Type == NEWLINE {
		return fmt.Sprintf("NEWLINE(indent=%d)", t.Indent)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

// lookupIdent classifies a scanned word as a keyword or a plain
// identifier, giving keywords priority as required by the grammar.
func lookupIdent(word string) TokenType {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return IDENT
}
