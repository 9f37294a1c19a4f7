package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mihaipopescu/pseudocod/errs"
	"github.com/mihaipopescu/pseudocod/parser"
)

// execStatement dispatches a single Statement node to its execution.
func (e *Evaluator) execStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.Read:
		return e.execRead(s)
	case *parser.Write:
		return e.execWrite(s)
	case *parser.Assign:
		return e.execAssign(s)
	case *parser.If:
		return e.execIf(s)
	case *parser.Loop:
		return e.execLoop(s)
	case *parser.For:
		return e.execFor(s)
	default:
		panic("eval: unknown statement node")
	}
}

// execRead consumes one input line per variable, in order, parsing
// each as a base-10 int32. A missing line is errs.Reading; a line
// that is not a valid integer is errs.IntegerParsing.
func (e *Evaluator) execRead(s *parser.Read) error {
	for _, name := range s.Vars {
		line, err := e.Reader.ReadString('\n')
		if err != nil && line == "" {
			return errs.NewReadingError()
		}
		line = strings.TrimRight(line, "\r\n")
		line = strings.TrimSpace(line)
		n, perr := strconv.ParseInt(line, 10, 32)
		if perr != nil {
			return errs.NewIntegerParsingError()
		}
		e.Env.Set(name, int32(n))
	}
	return nil
}

// execWrite renders each item in order with no separator between them
// and emits exactly one trailing newline for the whole statement, not
// one per item.
func (e *Evaluator) execWrite(s *parser.Write) error {
	var sb strings.Builder
	for _, item := range s.Items {
		switch w := item.(type) {
		case parser.StringWritable:
			sb.WriteString(w.Text)
		case parser.ExprWritable:
			v, err := e.evalExpr(w.Expr)
			if err != nil {
				return err
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		default:
			panic("eval: unknown writable node")
		}
	}
	_, err := fmt.Fprintln(e.Writer, sb.String())
	return err
}

func (e *Evaluator) execAssign(s *parser.Assign) error {
	v, err := e.evalExpr(s.Expr)
	if err != nil {
		return err
	}
	e.Env.Set(s.Name, v)
	return nil
}

func (e *Evaluator) execIf(s *parser.If) error {
	cond, err := e.evalExpr(s.Cond)
	if err != nil {
		return err
	}
	if truthy(cond) {
		return e.execBlock(s.Then)
	}
	if s.Else != nil {
		return e.execBlock(s.Else)
	}
	return nil
}
