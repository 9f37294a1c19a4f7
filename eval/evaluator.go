// Package eval tree-walks a parser.Program and executes it against a
// single env.Environment and a pair of I/O streams. There is exactly
// one Environment for the whole run: citeste/scrie are statement
// forms, not function calls, so nothing needs its own scope.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/mihaipopescu/pseudocod/env"
	"github.com/mihaipopescu/pseudocod/parser"
)

// Evaluator holds everything one Run needs: the variable environment
// and the two streams citeste/scrie talk to.
type Evaluator struct {
	Env    *env.Environment
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Evaluator with a fresh Environment, defaulting its
// streams to os.Stdin/os.Stdout; callers running programs in tests or
// behind a driver call SetReader/SetWriter before Run.
func New() *Evaluator {
	return &Evaluator{
		Env:    env.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects scrie output.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects citeste input.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// Run executes prog's top-level block against e's environment and
// streams, returning the first *errs.RuntimeError encountered (or the
// output writer's own error if a write fails).
func (e *Evaluator) Run(prog *parser.Program) error {
	return e.execBlock(prog.Statements)
}

func (e *Evaluator) execBlock(block parser.Block) error {
	for _, stmt := range block {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}
