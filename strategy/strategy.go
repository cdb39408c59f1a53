package strategy

import (
	"fmt"
	"io"
)

// Strategy is one interchangeable way to transform a value.
type Strategy interface {
	Execute(value int) int
}

// The StrategyFunc type is an adapter to allow the use of ordinary functions as Strategy.
// If f is a function with the appropriate signature, StrategyFunc(f) is a Strategy that calls f.
type StrategyFunc func(value int) int

// Execute calls f(value).
func (f StrategyFunc) Execute(value int) int {
	return f(value)
}

// AddStrategy adds Amount.
type AddStrategy struct {
	Amount int
}

func (s AddStrategy) Execute(value int) int {
	return value + s.Amount
}

// MultiplyStrategy multiplies by Factor.
type MultiplyStrategy struct {
	Factor int
}

func (s MultiplyStrategy) Execute(value int) int {
	return value * s.Factor
}

// Context runs a strategy fixed at compile time.
type Context[S Strategy] struct {
	strategy S
}

func NewContext[S Strategy](strategy S) *Context[S] {
	return &Context[S]{strategy: strategy}
}

func (c *Context[S]) Execute(value int) int {
	return c.strategy.Execute(value)
}

// DynamicContext runs whichever strategy it currently holds.
type DynamicContext struct {
	strategy Strategy
}

func NewDynamicContext(strategy Strategy) *DynamicContext {
	return &DynamicContext{strategy: strategy}
}

func (c *DynamicContext) SetStrategy(strategy Strategy) {
	c.strategy = strategy
}

func (c *DynamicContext) Execute(value int) int {
	return c.strategy.Execute(value)
}

// Demo swaps strategies on the same input.
func Demo(w io.Writer) {
	static := NewContext(AddStrategy{Amount: 5})
	fmt.Fprintf(w, "[Strategy demo] static AddStrategy: %d\n", static.Execute(10))

	dynamic := NewDynamicContext(MultiplyStrategy{Factor: 3})
	fmt.Fprintf(w, "[Strategy demo] dyn MultiplyStrategy: %d\n", dynamic.Execute(10))
	dynamic.SetStrategy(StrategyFunc(func(v int) int { return v - 2 }))
	fmt.Fprintf(w, "[Strategy demo] dyn closure subtract 2: %d\n", dynamic.Execute(10))
}
