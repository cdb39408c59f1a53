package builder

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProduct(t *testing.T) {
	p, err := NewProductBuilder().
		Name("Widget").
		Quantity(10).
		Build(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, uint32(10), p.Quantity)
}

func TestBuildProductMissingParts(t *testing.T) {
	_, err := NewProductBuilder().Quantity(1).Build(context.Background())
	assert.ErrorIs(t, err, ErrNameMissing)
	assert.NotErrorIs(t, err, ErrQuantityMissing)

	_, err = NewProductBuilder().Name("Widget").Build(context.Background())
	assert.ErrorIs(t, err, ErrQuantityMissing)

	_, err = NewProductBuilder().Build(context.Background())
	t.Log(err)
	assert.ErrorIs(t, err, ErrNameMissing)
	assert.ErrorIs(t, err, ErrQuantityMissing)
}

func TestBuildProductLastValueWins(t *testing.T) {
	p, err := NewProductBuilder().Name("a").Name("b").Quantity(1).Quantity(0).Build(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Product{Name: "b", Quantity: 0}, p)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProductBuilder().Name("a").Quantity(1).Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilderFunc(t *testing.T) {
	var b Builder[Product] = BuilderFunc[Product](func(ctx context.Context) (Product, error) {
		return Product{Name: "fixed", Quantity: 2}, nil
	})
	p, err := b.Build(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "fixed", p.Name)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)
	assert.Equal(t, "[Builder demo] name='DemoProduct', quantity=5\n", buf.String())
}
