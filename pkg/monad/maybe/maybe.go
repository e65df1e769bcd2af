package maybe

import (
	"fmt"

	"github.com/ib-77/bindchain/pkg/monad"
	"github.com/samber/mo"
)

// Maybe is either Just a value or Nothing
type Maybe[T any] struct {
	value T
	ok    bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{
		value: v,
		ok:    true,
	}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Unit wraps v, same as Just
func Unit[T any](v T) Maybe[T] {
	return Just(v)
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

func (m Maybe[T]) IsJust() bool {
	return m.ok
}

func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// IsTerminal implements monad.Terminal: Nothing ends every chain
func (m Maybe[T]) IsTerminal() bool {
	return !m.ok
}

func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Bind implements monad.Bindable
func (m Maybe[T]) Bind(f func(T) Maybe[T]) Maybe[T] {
	return Bind(m, f)
}

// Chain binds the transforms left to right and stops at the first Nothing
func (m Maybe[T]) Chain(fns ...func(T) Maybe[T]) Maybe[T] {
	return monad.Chain[T](m, fns...)
}

func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Bind passes the held value to f. Nothing is propagated without calling f.
func Bind[In, Out any](input Maybe[In], f func(In) Maybe[Out]) Maybe[Out] {
	if input.ok {
		return f(input.value)
	}
	return Nothing[Out]()
}

func Map[In, Out any](input Maybe[In], f func(In) Out) Maybe[Out] {
	if input.ok {
		return Just(f(input.value))
	}
	return Nothing[Out]()
}

// Validate returns Just(v) when valid holds for v, Nothing otherwise
func Validate[T any](v T, valid func(T) bool) Maybe[T] {
	if valid(v) {
		return Just(v)
	}
	return Nothing[T]()
}

// Try calls a function returning (Out, error); an error becomes Nothing
func Try[In, Out any](input Maybe[In], try func(In) (Out, error)) Maybe[Out] {
	if !input.ok {
		return Nothing[Out]()
	}

	out, err := try(input.value)
	if err != nil {
		return Nothing[Out]()
	}
	return Just(out)
}

// Tee runs a side effect on Just and returns the input unchanged
func Tee[T any](input Maybe[T], onJust func(T)) Maybe[T] {
	if input.ok {
		onJust(input.value)
	}
	return input
}

// Match collapses the Maybe into a single value
func Match[In, Out any](input Maybe[In], onJust func(In) Out, onNothing func() Out) Out {
	if input.ok {
		return onJust(input.value)
	}
	return onNothing()
}

func FromOption[T any](o mo.Option[T]) Maybe[T] {
	if v, ok := o.Get(); ok {
		return Just(v)
	}
	return Nothing[T]()
}

func ToOption[T any](m Maybe[T]) mo.Option[T] {
	if m.ok {
		return mo.Some(m.value)
	}
	return mo.None[T]()
}

var _ monad.Bindable[int, Maybe[int]] = Maybe[int]{}
var _ monad.Terminal = Maybe[int]{}
