package command

import (
	"context"
	"sync"
)

// Receiver performs the work a ConcreteCommand asks for.
type Receiver interface {
	Action(ctx context.Context, info string) error
}

var _ Receiver = (*History)(nil)

// History is a Receiver that records every action in order.
// Commands sharing one History append to the same log.
type History struct {
	mu  sync.Mutex
	log []string
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Action(_ context.Context, info string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log = append(h.log, info)
	return nil
}

// Undo drops the most recent entry and returns it.
func (h *History) Undo() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.log) == 0 {
		return "", ErrEmptyHistory
	}
	last := h.log[len(h.log)-1]
	h.log = h.log[:len(h.log)-1]
	return last, nil
}

// Log returns a copy of the recorded entries.
func (h *History) Log() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.log...)
}
