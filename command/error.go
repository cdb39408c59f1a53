package command

import "errors"

var (
	ErrNotReceiver    = errors.New("not implement receiver interface")
	ErrNotCommand     = errors.New("not implement Command interface")
	ErrNotUndoCommand = errors.New("not implement UndoCommand interface")
	ErrNotRedoCommand = errors.New("not implement RedoCommand interface")

	// ErrEmptyHistory nothing left to undo
	ErrEmptyHistory = errors.New("history is empty")
)
