package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-leo/patterns/decorator"
)

// ExitKey ends the interactive loop.
const ExitKey = "0"

var titleColor = lipgloss.Color("#7C3AED")

// Menu lists demos and dispatches the user's choice to one of them.
type Menu struct {
	options *options
}

// New builds a Menu. Entries must have unique keys and none may use ExitKey.
func New(opts ...Option) (*Menu, error) {
	o := newOptions(opts...)
	seen := make(map[string]struct{}, len(o.Entries))
	for _, e := range o.Entries {
		if e.Key == ExitKey {
			return nil, fmt.Errorf("%w: %q (%s)", ErrReservedKey, e.Key, e.Title)
		}
		if _, ok := seen[e.Key]; ok {
			return nil, fmt.Errorf("%w: %q (%s)", ErrDuplicateKey, e.Key, e.Title)
		}
		seen[e.Key] = struct{}{}
	}
	return &Menu{options: o}, nil
}

// Entries returns the entries in display order.
func (m *Menu) Entries() []Entry {
	return append([]Entry(nil), m.options.Entries...)
}

// Lookup finds an entry by key or by title.
func (m *Menu) Lookup(name string) (Entry, error) {
	for _, e := range m.options.Entries {
		if e.matches(name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
}

// Dispatch runs e, wrapped in the configured decorators, writing to out.
func (m *Menu) Dispatch(e Entry, out io.Writer) {
	decorators := make([]decorator.Decorator[Runner], 0, len(m.options.Decorators)+1)
	decorators = append(decorators, LogRun(m.options.Logger, e.Title))
	decorators = append(decorators, m.options.Decorators...)
	decorator.Chain(e.Run, decorators...)(out)
}

// Render writes the menu and the prompt.
func (m *Menu) Render(out io.Writer) {
	title := lipgloss.NewRenderer(out).NewStyle().Bold(true).Foreground(titleColor)
	fmt.Fprintf(out, "\n%s\n", title.Render("=== "+m.options.Title+" ==="))
	fmt.Fprintln(out, "Choose a pattern to demo:")
	for _, e := range m.options.Entries {
		fmt.Fprintf(out, " %2s) %s\n", e.Key, e.Title)
	}
	fmt.Fprintf(out, " %2s) Exit\n", ExitKey)
	fmt.Fprint(out, m.options.Prompt)
}

// Run shows the menu and runs the chosen demos until the user picks ExitKey,
// the input ends, or ctx is done. Unknown choices print a hint and re-prompt.
func (m *Menu) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := m.options.Logger
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Render(out)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("menu: read input: %w", err)
			}
			fmt.Fprintln(out)
			logger.Debug("input closed")
			return nil
		}
		choice := strings.TrimSpace(scanner.Text())
		if choice == ExitKey {
			fmt.Fprintln(out, "Exiting. Goodbye!")
			return nil
		}
		entry, ok := m.byKey(choice)
		if !ok {
			logger.Debug("invalid choice", slog.String("input", choice))
			fmt.Fprintf(out, "Invalid choice. Please enter a number from %s to %d.\n", ExitKey, len(m.options.Entries))
			continue
		}
		logger.Debug("dispatch", slog.String("key", entry.Key), slog.String("demo", entry.Title))
		m.Dispatch(entry, out)
	}
}

func (m *Menu) byKey(key string) (Entry, bool) {
	for _, e := range m.options.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
