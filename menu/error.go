package menu

import "errors"

var (
	// ErrUnknownEntry no entry matches the given key or title
	ErrUnknownEntry = errors.New("unknown menu entry")

	// ErrDuplicateKey two entries share a key
	ErrDuplicateKey = errors.New("duplicate menu key")

	// ErrReservedKey an entry uses the exit key
	ErrReservedKey = errors.New("menu key is reserved for exit")
)
