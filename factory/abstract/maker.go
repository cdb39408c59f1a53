package abstract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-leo/patterns/factory"
)

// ErrStyleUnsupported the Maker has no family for the style
var ErrStyleUnsupported = errors.New("furniture style not supported")

// Style selects a furniture family.
type Style int

const (
	ModernStyle Style = iota
	VictorianStyle
)

func (s Style) String() string {
	switch s {
	case ModernStyle:
		return "modern"
	case VictorianStyle:
		return "victorian"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

var _ factory.Factory[FurnitureFactory, Style] = Maker{}

// Maker The factory of furniture factories.
type Maker struct{}

func (Maker) Create(ctx context.Context, style Style) (FurnitureFactory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch style {
	case ModernStyle:
		return Dynamic[ModernChair, ModernSofa]{Family: ModernFactory{}}, nil
	case VictorianStyle:
		return Dynamic[VictorianChair, VictorianSofa]{Family: VictorianFactory{}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrStyleUnsupported, style)
	}
}

// Demo assembles furniture through a statically typed family and then
// through factories picked at run time.
func Demo(w io.Writer) {
	modern := ModernFactory{}
	fmt.Fprintf(w, "[AbstractFactory demo] %s\n", modern.CreateChair().Assemble())
	fmt.Fprintf(w, "[AbstractFactory demo] %s\n", modern.CreateSofa().Assemble())

	var maker factory.Factory[FurnitureFactory, Style] = Maker{}
	for _, style := range []Style{ModernStyle, VictorianStyle} {
		f, err := maker.Create(context.Background(), style)
		if err != nil {
			fmt.Fprintf(w, "[AbstractFactory demo] %v\n", err)
			continue
		}
		fmt.Fprintf(w, "[AbstractFactory demo] dyn %s\n", f.CreateChair().Assemble())
		fmt.Fprintf(w, "[AbstractFactory demo] dyn %s\n", f.CreateSofa().Assemble())
	}
}
