package eval

import (
	"github.com/mihaipopescu/pseudocod/errs"
	"github.com/mihaipopescu/pseudocod/parser"
)

// evalExpr evaluates an Expression to its int32 value. Every
// arithmetic and comparison operator works on plain 32-bit integers
// with Go's native wraparound semantics, and a comparison yields 1 or
// 0 rather than a distinct boolean type.
func (e *Evaluator) evalExpr(expr parser.Expression) (int32, error) {
	switch x := expr.(type) {
	case *parser.Constant:
		return x.Value, nil

	case *parser.Variable:
		v, ok := e.Env.Get(x.Name)
		if !ok {
			return 0, errs.NewVariableNotDefined(x.Name)
		}
		return v, nil

	case *parser.Neg:
		v, err := e.evalExpr(x.X)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *parser.Binary:
		return e.evalBinary(x)

	case *parser.Compare:
		return e.evalCompare(x)

	default:
		panic("eval: unknown expression node")
	}
}

func (e *Evaluator) evalBinary(b *parser.Binary) (int32, error) {
	left, err := e.evalExpr(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.evalExpr(b.Right)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case parser.OpAdd:
		return left + right, nil
	case parser.OpSub:
		return left - right, nil
	case parser.OpMul:
		return left * right, nil
	case parser.OpDiv:
		if right == 0 {
			return 0, errs.NewZeroDivision()
		}
		return left / right, nil
	case parser.OpMod:
		if right == 0 {
			return 0, errs.NewZeroDivision()
		}
		return left % right, nil
	default:
		panic("eval: unknown binary operator")
	}
}

func (e *Evaluator) evalCompare(c *parser.Compare) (int32, error) {
	left, err := e.evalExpr(c.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.evalExpr(c.Right)
	if err != nil {
		return 0, err
	}
	var ok bool
	switch c.Op {
	case parser.OpLT:
		ok = left < right
	case parser.OpLE:
		ok = left <= right
	case parser.OpEQ:
		ok = left == right
	case parser.OpGE:
		ok = left >= right
	case parser.OpGT:
		ok = left > right
	default:
		panic("eval: unknown comparison operator")
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}

// truthy treats any non-zero value as true and zero as false; used by
// If and every condition-driven loop.
func truthy(v int32) bool {
	return v != 0
}
