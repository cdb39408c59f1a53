package interpreter

import (
	"fmt"
	"io"
)

// Expression evaluates to an int.
type Expression interface {
	Interpret() int
}

// The ExpressionFunc type is an adapter to allow the use of ordinary functions as Expression.
type ExpressionFunc func() int

// Interpret calls f().
func (f ExpressionFunc) Interpret() int {
	return f()
}

// Number is a terminal expression.
type Number int

func NewNumber(value int) Number {
	return Number(value)
}

func (n Number) Interpret() int {
	return int(n)
}

// Plus is Left + Right.
type Plus struct {
	Left  Expression
	Right Expression
}

func NewPlus(left, right Expression) *Plus {
	return &Plus{Left: left, Right: right}
}

func (p *Plus) Interpret() int {
	return p.Left.Interpret() + p.Right.Interpret()
}

// Minus is Left - Right.
type Minus struct {
	Left  Expression
	Right Expression
}

func NewMinus(left, right Expression) *Minus {
	return &Minus{Left: left, Right: right}
}

func (m *Minus) Interpret() int {
	return m.Left.Interpret() - m.Right.Interpret()
}

// Demo interprets (10 - 4) + 3.
func Demo(w io.Writer) {
	expr := NewPlus(
		NewMinus(NewNumber(10), NewNumber(4)),
		NewNumber(3),
	)
	fmt.Fprintf(w, "[Interpreter demo] result = %d\n", expr.Interpret())
}
