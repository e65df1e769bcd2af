package demo

import (
	"fmt"
	"math"
	"slices"

	"github.com/ib-77/bindchain/pkg/monad/list"
	"github.com/ib-77/bindchain/pkg/monad/maybe"
	"github.com/ib-77/bindchain/pkg/monad/writer"
	"github.com/samber/lo"
)

// Fork returns the sequence transform s -> [s+suffix for each suffix].
func Fork(suffixes ...string) func(string) list.List[string] {
	return func(s string) list.List[string] {
		return list.Map(list.Of(suffixes...), func(suffix string) string {
			return s + suffix
		})
	}
}

// integer reports whether v is a finite whole number; NaN and ±Inf are not.
func integer(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}

func even(v float64) bool {
	return integer(v) && math.Mod(v, 2) == 0
}

// Add1 adds one to an integer; any other input is Nothing.
func Add1(v float64) maybe.Maybe[float64] {
	return maybe.Map(maybe.Validate(v, integer), func(n float64) float64 { return n + 1 })
}

// MultiplyBy2 doubles an integer; any other input is Nothing.
func MultiplyBy2(v float64) maybe.Maybe[float64] {
	return maybe.Map(maybe.Validate(v, integer), func(n float64) float64 { return n * 2 })
}

// Halve divides an even integer by two; any other input is Nothing.
func Halve(v float64) maybe.Maybe[float64] {
	return maybe.Map(maybe.Validate(v, even), func(n float64) float64 { return n / 2 })
}

func Square(v int) writer.Logged[int] {
	return writer.Tell(v*v, fmt.Sprintf("squared %d to %d", v, v*v))
}

func AddOne(v int) writer.Logged[int] {
	return writer.Tell(v+1, fmt.Sprintf("added 1 to %d", v))
}

func Double(v int) writer.Logged[int] {
	return writer.Tell(v*2, fmt.Sprintf("doubled %d to %d", v, v*2))
}

// Decorate returns the transform that appends emoji to a string.
func Decorate(emoji string) func(string) writer.Logged[string] {
	return func(s string) writer.Logged[string] {
		return writer.Tell(s+emoji, "added "+emoji)
	}
}

var optionalSteps = map[string]func(float64) maybe.Maybe[float64]{
	"add1":          Add1,
	"multiply_by_2": MultiplyBy2,
	"halve":         Halve,
}

var annotatedSteps = map[string]func(int) writer.Logged[int]{
	"square": Square,
	"add1":   AddOne,
	"double": Double,
}

// OptionalStep looks up an optional transform by name.
func OptionalStep(name string) maybe.Maybe[func(float64) maybe.Maybe[float64]] {
	f, ok := optionalSteps[name]
	if !ok {
		return maybe.Nothing[func(float64) maybe.Maybe[float64]]()
	}
	return maybe.Just(f)
}

// AnnotatedStep looks up an annotated transform by name.
func AnnotatedStep(name string) maybe.Maybe[func(int) writer.Logged[int]] {
	f, ok := annotatedSteps[name]
	if !ok {
		return maybe.Nothing[func(int) writer.Logged[int]]()
	}
	return maybe.Just(f)
}

func OptionalStepNames() []string {
	return sortedKeys(optionalSteps)
}

func AnnotatedStepNames() []string {
	return sortedKeys(annotatedSteps)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
