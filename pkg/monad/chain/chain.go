package chain

import (
	"github.com/ib-77/bindchain/pkg/monad"
)

// Chain wraps a container to enable fluent binding
type Chain[T any, M monad.Bindable[T, M]] struct {
	container M
	steps     int
}

// Start creates a new chain from a container
func Start[T any, M monad.Bindable[T, M]](container M) *Chain[T, M] {
	return &Chain[T, M]{
		container: container,
	}
}

// Result returns the underlying container
func (c *Chain[T, M]) Result() M {
	return c.container
}

// Steps returns how many times a transform was actually invoked
func (c *Chain[T, M]) Steps() int {
	return c.steps
}

// Then binds a single transform unless the container is terminal
func (c *Chain[T, M]) Then(f func(T) M) *Chain[T, M] {
	if monad.IsTerminal(c.container) {
		return c
	}
	return c.ThenAll(f)
}

// ThenAll binds the transforms left to right via monad.Chain
func (c *Chain[T, M]) ThenAll(fns ...func(T) M) *Chain[T, M] {
	invoked := 0
	counted := make([]func(T) M, len(fns))
	for i, f := range fns {
		f := f // per-iteration copy; go directive is below 1.22
		counted[i] = func(v T) M {
			invoked++
			return f(v)
		}
	}

	return &Chain[T, M]{
		container: monad.Chain[T](c.container, counted...),
		steps:     c.steps + invoked,
	}
}

// Ensure runs a side effect on the container unless it is terminal
func (c *Chain[T, M]) Ensure(onContinue func(M)) *Chain[T, M] {
	if !monad.IsTerminal(c.container) {
		onContinue(c.container)
	}
	return c
}
