package menu

import (
	"io"
	"log/slog"

	"github.com/go-leo/patterns/decorator"
)

const (
	// DefaultTitle is the heading used when no Title option is given.
	DefaultTitle = "Oxidized Patterns Demo"
	// DefaultPrompt is the prompt used when no Prompt option is given.
	DefaultPrompt = "Enter choice: "
)

type options struct {
	Title      string
	Prompt     string
	Entries    []Entry
	Decorators []decorator.Decorator[Runner]
	Logger     *slog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Option configures a Menu.
type Option func(*options)

// Title sets the heading printed above the entries.
func Title(title string) Option {
	return func(o *options) {
		o.Title = title
	}
}

// Prompt sets the text printed before reading a choice.
func Prompt(prompt string) Option {
	return func(o *options) {
		o.Prompt = prompt
	}
}

// Entries appends selectable entries, in display order.
func Entries(entries ...Entry) Option {
	return func(o *options) {
		o.Entries = append(o.Entries, entries...)
	}
}

// Decorate wraps every demo run with the given decorators.
func Decorate(decorators ...decorator.Decorator[Runner]) Option {
	return func(o *options) {
		o.Decorators = append(o.Decorators, decorators...)
	}
}

// Logger sets where dispatch decisions are logged.
func Logger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}
