package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Product is what ProductBuilder builds.
type Product struct {
	Name     string
	Quantity uint32
}

var _ Builder[Product] = (*ProductBuilder)(nil)

// ProductBuilder collects the parts of a Product. Name and Quantity are both
// required; calling a setter again replaces the earlier value.
type ProductBuilder struct {
	name     *string
	quantity *uint32
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{}
}

func (b *ProductBuilder) Name(name string) *ProductBuilder {
	b.name = &name
	return b
}

func (b *ProductBuilder) Quantity(qty uint32) *ProductBuilder {
	b.quantity = &qty
	return b
}

// Build returns the Product, or every missing part joined into one error.
func (b *ProductBuilder) Build(ctx context.Context) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	var errs []error
	if b.name == nil {
		errs = append(errs, ErrNameMissing)
	}
	if b.quantity == nil {
		errs = append(errs, ErrQuantityMissing)
	}
	if len(errs) > 0 {
		return Product{}, errors.Join(errs...)
	}
	return Product{Name: *b.name, Quantity: *b.quantity}, nil
}

// Demo builds a product through the fluent builder.
func Demo(w io.Writer) {
	prod, err := NewProductBuilder().
		Name("DemoProduct").
		Quantity(5).
		Build(context.Background())
	if err != nil {
		fmt.Fprintf(w, "[Builder demo] %v\n", err)
		return
	}
	fmt.Fprintf(w, "[Builder demo] name='%s', quantity=%d\n", prod.Name, prod.Quantity)
}
