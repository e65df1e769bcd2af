package writer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ib-77/bindchain/pkg/monad"
)

// Logged pairs a value with an append-only log of annotations
type Logged[T any] struct {
	value T
	log   []string
}

func New[T any](v T, entries ...string) Logged[T] {
	return Logged[T]{
		value: v,
		log:   concat(nil, entries),
	}
}

// Unit wraps v with an empty log
func Unit[T any](v T) Logged[T] {
	return New(v)
}

// Tell wraps v with a single log entry
func Tell[T any](v T, entry string) Logged[T] {
	return New(v, entry)
}

func (l Logged[T]) Value() T {
	return l.value
}

// Log returns a copy of the annotations, oldest first
func (l Logged[T]) Log() []string {
	return slices.Clone(l.log)
}

// Bind implements monad.Bindable
func (l Logged[T]) Bind(f func(T) Logged[T]) Logged[T] {
	return Bind(l, f)
}

func (l Logged[T]) Chain(fns ...func(T) Logged[T]) Logged[T] {
	return monad.Chain[T](l, fns...)
}

func (l Logged[T]) String() string {
	return fmt.Sprintf("%v [%s]", l.value, strings.Join(l.log, "; "))
}

// Bind runs f on the held value. The result carries the value produced by f
// and the input log followed by the log produced by f.
func Bind[In, Out any](input Logged[In], f func(In) Logged[Out]) Logged[Out] {
	next := f(input.value)
	return Logged[Out]{
		value: next.value,
		log:   concat(input.log, next.log),
	}
}

// Map transforms the value and keeps the log unchanged
func Map[In, Out any](input Logged[In], f func(In) Out) Logged[Out] {
	return Logged[Out]{
		value: f(input.value),
		log:   concat(input.log, nil),
	}
}

func concat(first, second []string) []string {
	out := make([]string, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

var _ monad.Bindable[int, Logged[int]] = Logged[int]{}
