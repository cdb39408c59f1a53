package cmd

import (
	"github.com/go-leo/patterns/adapter"
	"github.com/go-leo/patterns/builder"
	"github.com/go-leo/patterns/command"
	"github.com/go-leo/patterns/factory/abstract"
	"github.com/go-leo/patterns/fold"
	"github.com/go-leo/patterns/interpreter"
	"github.com/go-leo/patterns/menu"
	"github.com/go-leo/patterns/newtype"
	"github.com/go-leo/patterns/observer"
	"github.com/go-leo/patterns/strategy"
	"github.com/go-leo/patterns/visitor"
)

// catalog lists the demos in menu order.
func catalog() []menu.Entry {
	return []menu.Entry{
		{Key: "1", Title: "Builder", Run: builder.Demo},
		{Key: "2", Title: "Fold", Run: fold.Demo},
		{Key: "3", Title: "Command", Run: command.Demo},
		{Key: "4", Title: "Interpreter", Run: interpreter.Demo},
		{Key: "5", Title: "Newtype", Run: newtype.Demo},
		{Key: "6", Title: "Strategy", Run: strategy.Demo},
		{Key: "7", Title: "Visitor", Run: visitor.Demo},
		{Key: "8", Title: "Observer", Run: observer.Demo},
		{Key: "9", Title: "Abstract Factory", Run: abstract.Demo},
		{Key: "10", Title: "Adapter", Run: adapter.Demo},
	}
}
