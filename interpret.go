// Package pseudocod implements a lexer, parser, and tree-walking
// evaluator for the pseudocod teaching language: a whitespace-delimited,
// Romanian-keyword pseudocode notation over 32-bit signed integers.
//
// Interpret is the one entry point a caller needs; lexer, parser, env,
// and eval are usable independently by anything that wants lower-level
// access (a future CLI or editor front end, which are themselves out of
// scope here).
package pseudocod

import (
	"io"

	"github.com/mihaipopescu/pseudocod/eval"
	"github.com/mihaipopescu/pseudocod/parser"
)

// Interpret parses source and runs it to completion, reading citeste
// input from input and writing scrie output to output. It returns the
// first error encountered: a *errs.ParseError if source is malformed,
// or a *errs.RuntimeError if a well-formed program fails while
// running. A failed write to output is returned as the writer's own
// error.
func Interpret(input io.Reader, output io.Writer, source string) error {
	prog, err := parser.Parse(source)
	if err != nil {
		return err
	}
	ev := eval.New()
	ev.SetReader(input)
	ev.SetWriter(output)
	return ev.Run(prog)
}
