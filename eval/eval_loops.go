package eval

import (
	"github.com/mihaipopescu/pseudocod/errs"
	"github.com/mihaipopescu/pseudocod/parser"
)

// execLoop runs one of the three condition-driven loop forms: While
// checks before every iteration, the other two always run their body
// at least once and differ only in which condition value keeps the
// loop going.
func (e *Evaluator) execLoop(s *parser.Loop) error {
	switch s.Kind {
	case parser.While:
		for {
			cond, err := e.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := e.execBlock(s.Body); err != nil {
				return err
			}
		}

	case parser.DoWhile:
		for {
			if err := e.execBlock(s.Body); err != nil {
				return err
			}
			cond, err := e.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
		}

	case parser.Repeat:
		for {
			if err := e.execBlock(s.Body); err != nil {
				return err
			}
			cond, err := e.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if truthy(cond) {
				return nil
			}
		}

	default:
		panic("eval: unknown loop kind")
	}
}

// execFor runs the counted pentru loop. The loop variable is bound to
// start first; step is then evaluated once before the first iteration
// (so it may read the loop variable) and its sign picks which of the two iteration
// branches runs; start and end bound the first and every later
// comparison, with end re-evaluated each pass in case the body
// reassigns a variable it depends on. A non-negative step additionally
// re-evaluates the step expression after incrementing the loop
// variable on every iteration and aborts with
// errs.VariableStepInLoop if it no longer matches what was captured
// at the start; a negative step carries no such check.
func (e *Evaluator) execFor(s *parser.For) error {
	start, err := e.evalExpr(s.Start)
	if err != nil {
		return err
	}
	e.Env.Set(s.Var, start)
	step, err := e.evalExpr(s.Step)
	if err != nil {
		return err
	}

	if step >= 0 {
		for {
			end, err := e.evalExpr(s.End)
			if err != nil {
				return err
			}
			cur, _ := e.Env.Get(s.Var)
			if cur > end {
				return nil
			}
			if err := e.execBlock(s.Body); err != nil {
				return err
			}
			cur, _ = e.Env.Get(s.Var)
			e.Env.Set(s.Var, cur+step)
			curStep, err := e.evalExpr(s.Step)
			if err != nil {
				return err
			}
			if curStep != step {
				return errs.NewVariableStepInLoop()
			}
		}
	}

	for {
		end, err := e.evalExpr(s.End)
		if err != nil {
			return err
		}
		cur, _ := e.Env.Get(s.Var)
		if cur < end {
			return nil
		}
		if err := e.execBlock(s.Body); err != nil {
			return err
		}
		cur, _ = e.Env.Get(s.Var)
		e.Env.Set(s.Var, cur+step)
	}
}
