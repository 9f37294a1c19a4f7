package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mihaipopescu/pseudocod/errs"
)

func TestParse_SimpleAssignAndWrite(t *testing.T) {
	prog, err := Parse("x <- 12\nscrie x")
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 2)

	assign, ok := prog.Statements[0].(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	c, ok := assign.Expr.(*Constant)
	assert.True(t, ok)
	assert.Equal(t, int32(12), c.Value)

	wr, ok := prog.Statements[1].(*Write)
	assert.True(t, ok)
	assert.Len(t, wr.Items, 1)
	ew, ok := wr.Items[0].(ExprWritable)
	assert.True(t, ok)
	v, ok := ew.Expr.(*Variable)
	assert.True(t, ok)
	assert.Equal(t, "x", v.Name)
}

func TestParse_ReadMultipleVars(t *testing.T) {
	prog, err := Parse("citeste a, b, c")
	assert.NoError(t, err)
	rd, ok := prog.Statements[0].(*Read)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, rd.Vars)
}

func TestParse_WriteStringAndExpr(t *testing.T) {
	prog, err := Parse(`scrie 'suma este', a + 1`)
	assert.NoError(t, err)
	wr := prog.Statements[0].(*Write)
	assert.Len(t, wr.Items, 2)
	sw, ok := wr.Items[0].(StringWritable)
	assert.True(t, ok)
	assert.Equal(t, "suma este", sw.Text)
	_, ok = wr.Items[1].(ExprWritable)
	assert.True(t, ok)
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	prog, err := Parse("x <- 1 + 2 * 3")
	assert.NoError(t, err)
	assign := prog.Statements[0].(*Assign)
	add, ok := assign.Expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpAdd, add.Op)
	_, ok = add.Left.(*Constant)
	assert.True(t, ok)
	mul, ok := add.Right.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpMul, mul.Op)
}

func TestParse_LeftAssociativeSubtraction(t *testing.T) {
	prog, err := Parse("x <- 10 - 3 - 2")
	assert.NoError(t, err)
	assign := prog.Statements[0].(*Assign)
	outer, ok := assign.Expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpSub, outer.Op)
	inner, ok := outer.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, OpSub, inner.Op)
	rightConst, ok := outer.Right.(*Constant)
	assert.True(t, ok)
	assert.Equal(t, int32(2), rightConst.Value)
}

func TestParse_UnaryMinus(t *testing.T) {
	prog, err := Parse("x <- -5 + 1")
	assert.NoError(t, err)
	assign := prog.Statements[0].(*Assign)
	add := assign.Expr.(*Binary)
	assert.Equal(t, OpAdd, add.Op)
	neg, ok := add.Left.(*Neg)
	assert.True(t, ok)
	c := neg.X.(*Constant)
	assert.Equal(t, int32(5), c.Value)
}

func TestParse_ParenthesizedExpr(t *testing.T) {
	prog, err := Parse("x <- (1 + 2) * 3")
	assert.NoError(t, err)
	assign := prog.Statements[0].(*Assign)
	mul := assign.Expr.(*Binary)
	assert.Equal(t, OpMul, mul.Op)
	_, ok := mul.Left.(*Binary)
	assert.True(t, ok)
}

func TestParse_ComparisonOperators(t *testing.T) {
	prog, err := Parse("x <- a <= b")
	assert.NoError(t, err)
	assign := prog.Statements[0].(*Assign)
	cmp := assign.Expr.(*Compare)
	assert.Equal(t, OpLE, cmp.Op)
}

func TestParse_LiteralOverflowIsParseError(t *testing.T) {
	_, err := Parse("x <- 4294967296")
	assert.Error(t, err)
	pe, ok := err.(*errs.ParseError)
	assert.True(t, ok)
	assert.Equal(t, errs.LiteralOverflow, pe.Kind)
}

func TestParse_IfWithoutElse(t *testing.T) {
	src := "daca a < b atunci\n  scrie a"
	prog, err := Parse(src)
	assert.NoError(t, err)
	ifStmt, ok := prog.Statements[0].(*If)
	assert.True(t, ok)
	assert.Len(t, ifStmt.Then, 1)
	assert.Nil(t, ifStmt.Else)
}

func TestParse_IfWithElse(t *testing.T) {
	src := "daca a < b atunci\n  scrie a\naltfel\n  scrie b"
	prog, err := Parse(src)
	assert.NoError(t, err)
	ifStmt := prog.Statements[0].(*If)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParse_IfFollowedByOuterStatement(t *testing.T) {
	src := "daca a < b atunci\n  scrie a\nscrie b"
	prog, err := Parse(src)
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 2)
	ifStmt := prog.Statements[0].(*If)
	assert.Nil(t, ifStmt.Else)
	_, ok := prog.Statements[1].(*Write)
	assert.True(t, ok)
}

func TestParse_While(t *testing.T) {
	src := "cat timp a < 10 executa\n  a <- a + 1"
	prog, err := Parse(src)
	assert.NoError(t, err)
	loop := prog.Statements[0].(*Loop)
	assert.Equal(t, While, loop.Kind)
	assert.Len(t, loop.Body, 1)
}

func TestParse_DoWhile(t *testing.T) {
	src := "executa\n  a <- a + 1\ncat timp a < 10"
	prog, err := Parse(src)
	assert.NoError(t, err)
	loop := prog.Statements[0].(*Loop)
	assert.Equal(t, DoWhile, loop.Kind)
	assert.Len(t, loop.Body, 1)
}

func TestParse_Repeat(t *testing.T) {
	src := "repeta\n  a <- a + 1\npana cand a = 10"
	prog, err := Parse(src)
	assert.NoError(t, err)
	loop := prog.Statements[0].(*Loop)
	assert.Equal(t, Repeat, loop.Kind)
}

func TestParse_ForWithDefaultStep(t *testing.T) {
	src := "pentru i <- 1, 10 executa\n  scrie i"
	prog, err := Parse(src)
	assert.NoError(t, err)
	forStmt := prog.Statements[0].(*For)
	assert.Equal(t, "i", forStmt.Var)
	step := forStmt.Step.(*Constant)
	assert.Equal(t, int32(1), step.Value)
}

func TestParse_ForWithExplicitStep(t *testing.T) {
	src := "pentru i <- 10, 1, -1 executa\n  scrie i"
	prog, err := Parse(src)
	assert.NoError(t, err)
	forStmt := prog.Statements[0].(*For)
	neg := forStmt.Step.(*Neg)
	c := neg.X.(*Constant)
	assert.Equal(t, int32(1), c.Value)
}

func TestParse_NestedBlocks(t *testing.T) {
	src := "daca a < b atunci\n  daca c < d atunci\n    scrie c\n  scrie a\nscrie b"
	prog, err := Parse(src)
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 2)
	outer := prog.Statements[0].(*If)
	assert.Len(t, outer.Then, 2)
	inner := outer.Then[0].(*If)
	assert.Len(t, inner.Then, 1)
	assert.Nil(t, inner.Else)
}

func TestParse_TrailingGarbageIsRejected(t *testing.T) {
	src := "scrie 1\n  scrie 2"
	_, err := Parse(src)
	assert.Error(t, err)
}

func TestParse_TabInIndentationIsRejected(t *testing.T) {
	src := "daca a < b atunci\n\tscrie a"
	_, err := Parse(src)
	assert.Error(t, err)
}
