package adapter

import (
	"fmt"
	"io"
)

// Target is the interface clients expect.
type Target interface {
	Request() string
}

// Adaptee is the legacy type with an incompatible method.
type Adaptee struct {
	Data string
}

func NewAdaptee(data string) *Adaptee {
	return &Adaptee{Data: data}
}

func (a *Adaptee) SpecificRequest() string {
	return a.Data
}

var _ Target = Adapter{}

// Adapter makes an Adaptee usable as a Target.
type Adapter struct {
	Adaptee *Adaptee
}

func NewAdapter(adaptee *Adaptee) Adapter {
	return Adapter{Adaptee: adaptee}
}

func (receiver Adapter) Request() string {
	return fmt.Sprintf("Adapter: [%s]", receiver.Adaptee.SpecificRequest())
}

// Demo calls a legacy Adaptee directly and then through the Target interface.
func Demo(w io.Writer) {
	adaptee := NewAdaptee("some legacy data")
	fmt.Fprintf(w, "[Adapter demo] Adaptee specific: %s\n", adaptee.SpecificRequest())

	var target Target = NewAdapter(adaptee)
	fmt.Fprintf(w, "[Adapter demo] Adapter as Target: %s\n", target.Request())
}
