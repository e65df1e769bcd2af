// Package monad defines the bind capability shared by the container kinds
// in maybe, list and writer, and the generic functions built on top of it.
//
// Key operations:
// - Bindable: a container of kind M holding T that can Bind(func(T) M) M
// - Terminal: optional capability of kinds with a failure variant
// - Bind: apply a single transform
// - Chain: apply transforms left to right, stopping at a terminal container
// - Compose: Kleisli composition of two transforms
//
// Every kind is expected to satisfy:
//
//	left identity:   Unit(x).Bind(f) == f(x)
//	right identity:  m.Bind(Unit) == m
//	associativity:   Chain(Chain(m, f), g) == Chain(m, f, g) == m.Bind(Compose(f, g))
package monad
