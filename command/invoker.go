package command

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Invoker triggers a Command without knowing what it does.
type Invoker struct {
	command Command
}

func NewInvoker(command Command) *Invoker {
	return &Invoker{command: command}
}

func (i *Invoker) Invoke(ctx context.Context) error {
	if i.command == nil {
		return ErrNotCommand
	}
	_, err := i.command.Execute(ctx)
	return err
}

// Demo runs two commands against one shared History, then undoes and redoes
// the second one.
func Demo(w io.Writer) {
	ctx := context.Background()
	receiver := NewHistory()
	second := Undoable(receiver, "Command 2")
	invoker1 := NewInvoker(NewConcreteCommand(receiver, "Command 1"))
	invoker2 := NewInvoker(second)
	for _, invoker := range []*Invoker{invoker1, invoker2} {
		if err := invoker.Invoke(ctx); err != nil {
			fmt.Fprintf(w, "[Command demo] %v\n", err)
			return
		}
	}
	steps := []struct {
		label string
		do    func(context.Context) (context.Context, error)
	}{
		{label: "history"},
		{label: "undo", do: second.Undo},
		{label: "redo", do: second.Redo},
	}
	for _, step := range steps {
		if step.do != nil {
			if _, err := step.do(ctx); err != nil {
				fmt.Fprintf(w, "[Command demo] %s: %v\n", step.label, err)
				return
			}
		}
		history, err := jsoniter.MarshalToString(receiver.Log())
		if err != nil {
			fmt.Fprintf(w, "[Command demo] %v\n", err)
			return
		}
		fmt.Fprintf(w, "[Command demo] %s=%s\n", step.label, history)
	}
}
