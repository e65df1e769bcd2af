package list

import (
	"fmt"

	"github.com/ib-77/bindchain/pkg/monad"
	"github.com/samber/lo"
)

// List is an immutable ordered sequence
type List[T any] struct {
	items []T
}

func Of[T any](items ...T) List[T] {
	return List[T]{items: clone(items)}
}

func Empty[T any]() List[T] {
	return List[T]{items: []T{}}
}

// Unit wraps v into a one-element list
func Unit[T any](v T) List[T] {
	return List[T]{items: []T{v}}
}

// Values returns a copy of the elements
func (l List[T]) Values() []T {
	return clone(l.items)
}

func (l List[T]) Len() int {
	return len(l.items)
}

func (l List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Bind implements monad.Bindable
func (l List[T]) Bind(f func(T) List[T]) List[T] {
	return Bind(l, f)
}

// Chain binds the transforms left to right. An empty list stays empty.
func (l List[T]) Chain(fns ...func(T) List[T]) List[T] {
	return monad.Chain[T](l, fns...)
}

func (l List[T]) String() string {
	return fmt.Sprintf("%v", l.items)
}

// Bind applies f to every element and flattens the results one level,
// keeping input order and duplicates.
func Bind[In, Out any](input List[In], f func(In) List[Out]) List[Out] {
	return List[Out]{
		items: lo.FlatMap(input.items, func(item In, _ int) []Out {
			return f(item).items
		}),
	}
}

func Map[In, Out any](input List[In], f func(In) Out) List[Out] {
	return List[Out]{
		items: lo.Map(input.items, func(item In, _ int) Out {
			return f(item)
		}),
	}
}

// Flatten concatenates nested lists into one level
func Flatten[T any](nested List[List[T]]) List[T] {
	return Bind(nested, func(inner List[T]) List[T] { return inner })
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

var _ monad.Bindable[int, List[int]] = List[int]{}
