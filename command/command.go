package command

import (
	"context"
)

// Command is one request, executed on demand. Execute may return a derived
// context carrying whatever the command produced.
type Command interface {
	Execute(ctx context.Context) (context.Context, error)
}

// UndoCommand reverts what a Command did.
type UndoCommand interface {
	Undo(ctx context.Context) (context.Context, error)
}

// RedoCommand reapplies a Command after it was undone.
type RedoCommand interface {
	Redo(ctx context.Context) (context.Context, error)
}

// CommandFunc lets a plain function serve as a Command.
type CommandFunc func(ctx context.Context) (context.Context, error)

func (f CommandFunc) Execute(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

// UndoCommandFunc lets a plain function serve as an UndoCommand.
type UndoCommandFunc func(ctx context.Context) (context.Context, error)

func (f UndoCommandFunc) Undo(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

// RedoCommandFunc lets a plain function serve as a RedoCommand.
type RedoCommandFunc func(ctx context.Context) (context.Context, error)

func (f RedoCommandFunc) Redo(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

var _ Command = (*ConcreteCommand)(nil)

// ConcreteCommand hands its info to a Receiver when executed.
type ConcreteCommand struct {
	receiver Receiver
	info     string
}

func NewConcreteCommand(receiver Receiver, info string) *ConcreteCommand {
	return &ConcreteCommand{receiver: receiver, info: info}
}

func (cmd *ConcreteCommand) Execute(ctx context.Context) (context.Context, error) {
	if cmd.receiver == nil {
		return ctx, ErrNotReceiver
	}
	return ctx, cmd.receiver.Action(ctx, cmd.info)
}

var (
	_ Command     = (*RichCommand)(nil)
	_ UndoCommand = (*RichCommand)(nil)
	_ RedoCommand = (*RichCommand)(nil)
)

// RichCommand pairs a Command with its undo and redo. Any of the three may be
// nil, in which case the matching method reports ErrNot*Command.
type RichCommand struct {
	cmd  Command
	undo UndoCommand
	redo RedoCommand
}

func NewRichCommand(cmd Command, undo UndoCommand, redo RedoCommand) *RichCommand {
	return &RichCommand{cmd: cmd, undo: undo, redo: redo}
}

// Undoable records info in h when executed. Undo drops the latest entry of h
// and Redo records info again.
func Undoable(h *History, info string) *RichCommand {
	return NewRichCommand(
		NewConcreteCommand(h, info),
		UndoCommandFunc(func(ctx context.Context) (context.Context, error) {
			_, err := h.Undo()
			return ctx, err
		}),
		RedoCommandFunc(func(ctx context.Context) (context.Context, error) {
			return ctx, h.Action(ctx, info)
		}),
	)
}

func (rc *RichCommand) Execute(ctx context.Context) (context.Context, error) {
	if rc.cmd == nil {
		return ctx, ErrNotCommand
	}
	return rc.cmd.Execute(ctx)
}

func (rc *RichCommand) Undo(ctx context.Context) (context.Context, error) {
	if rc.undo == nil {
		return ctx, ErrNotUndoCommand
	}
	return rc.undo.Undo(ctx)
}

func (rc *RichCommand) Redo(ctx context.Context) (context.Context, error) {
	if rc.redo == nil {
		return ctx, ErrNotRedoCommand
	}
	return rc.redo.Redo(ctx)
}
