package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainOrder(t *testing.T) {
	var calls []string
	wrap := func(name string) Decorator[func()] {
		return Func[func()](func(next func()) func() {
			return func() {
				calls = append(calls, name+" before")
				next()
				calls = append(calls, name+" after")
			}
		})
	}
	run := Chain(func() { calls = append(calls, "run") }, wrap("outer"), nil, wrap("inner"))
	run()
	assert.Equal(t, []string{"outer before", "inner before", "run", "inner after", "outer after"}, calls)
}

func TestChainNone(t *testing.T) {
	assert.Equal(t, 3, Chain(3))
	double := Func[int](func(i int) int { return i * 2 })
	assert.Equal(t, 12, Chain(3, double, double))
}
