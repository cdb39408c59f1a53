package observer

import (
	"fmt"
	"io"
	"strconv"
)

// Event is what the demo emitter publishes: Started, Data or Finished.
type Event interface {
	fmt.Stringer
	event()
}

type Started struct{}

type Data struct {
	Payload string
}

type Finished struct{}

func (Started) event()  {}
func (Data) event()     {}
func (Finished) event() {}

func (Started) String() string  { return "Started" }
func (d Data) String() string   { return "Data(" + strconv.Quote(d.Payload) + ")" }
func (Finished) String() string { return "Finished" }

// Demo subscribes two handlers, emits a few events and drops the first
// handler before the last one.
func Demo(w io.Writer) {
	emitter := NewEmitter[Event]()
	id1 := emitter.Subscribe(func(e Event) {
		fmt.Fprintf(w, "[Observer demo] Handler1 got event: %s\n", e)
	})
	emitter.Subscribe(func(e Event) {
		if d, ok := e.(Data); ok {
			fmt.Fprintf(w, "[Observer demo] Data handler got: %s\n", d.Payload)
		}
	})

	emitter.Emit(Started{})
	emitter.Emit(Data{Payload: "hello"})
	emitter.Emit(Finished{})

	emitter.Unsubscribe(id1)
	emitter.Emit(Data{Payload: "world"})
}
