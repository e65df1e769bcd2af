package chain

import (
	"testing"

	"github.com/ib-77/bindchain/pkg/monad/list"
	"github.com/ib-77/bindchain/pkg/monad/maybe"
	"github.com/ib-77/bindchain/pkg/monad/writer"
)

func double(v int) maybe.Maybe[int] {
	return maybe.Just(v * 2)
}

func odd(v int) maybe.Maybe[int] {
	if v%2 == 0 {
		return maybe.Nothing[int]()
	}
	return maybe.Just(v)
}

func TestStart_Result(t *testing.T) {
	t.Parallel()

	c := Start[int](maybe.Just(10))
	out := c.Result()
	if v, ok := out.Get(); !ok || v != 10 {
		t.Fatalf("expected Just(10), got %v", out)
	}
	if c.Steps() != 0 {
		t.Fatalf("expected no steps, got %d", c.Steps())
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	c := Start[int](maybe.Just(3)).Then(double).Then(double)
	if v, ok := c.Result().Get(); !ok || v != 12 {
		t.Fatalf("expected Just(12), got %v", c.Result())
	}
	if c.Steps() != 2 {
		t.Fatalf("expected 2 steps, got %d", c.Steps())
	}
}

func TestThen_ShortCircuitOnNothing(t *testing.T) {
	t.Parallel()

	called := false
	c := Start[int](maybe.Just(3)).
		Then(double).
		Then(odd).
		Then(func(v int) maybe.Maybe[int] {
			called = true
			return maybe.Just(v)
		})

	if !c.Result().IsNothing() {
		t.Fatalf("expected Nothing, got %v", c.Result())
	}
	if called {
		t.Fatalf("Then must not call the transform after Nothing")
	}
	if c.Steps() != 2 {
		t.Fatalf("expected 2 steps, got %d", c.Steps())
	}
}

func TestThenAll_CountsOnlyInvokedTransforms(t *testing.T) {
	t.Parallel()

	c := Start[int](maybe.Just(1)).ThenAll(double, odd, double, double)
	if !c.Result().IsNothing() {
		t.Fatalf("expected Nothing, got %v", c.Result())
	}
	if c.Steps() != 2 {
		t.Fatalf("expected 2 steps, got %d", c.Steps())
	}

	empty := Start[int](maybe.Just(1)).ThenAll()
	if v, ok := empty.Result().Get(); !ok || v != 1 || empty.Steps() != 0 {
		t.Fatalf("expected unchanged Just(1), got %v after %d steps", empty.Result(), empty.Steps())
	}
}

func TestThenAll_ListCountsPerElement(t *testing.T) {
	t.Parallel()

	pair := func(s string) list.List[string] { return list.Of(s+"1", s+"2") }
	c := Start[string](list.Of("a", "b")).ThenAll(pair, pair)

	if c.Result().Len() != 8 {
		t.Fatalf("expected 8 elements, got %v", c.Result())
	}
	if c.Steps() != 6 {
		t.Fatalf("expected 6 invocations, got %d", c.Steps())
	}
}

func TestEnsure_SideEffectOnlyWhileNotTerminal(t *testing.T) {
	t.Parallel()

	calls := 0
	logged := Start[int](writer.Tell(1, "one")).
		Ensure(func(w writer.Logged[int]) { calls++ }).
		Result()
	if calls != 1 || logged.Value() != 1 {
		t.Fatalf("expected one side effect and value 1, got calls=%d value=%d", calls, logged.Value())
	}

	Start[int](maybe.Nothing[int]()).Ensure(func(maybe.Maybe[int]) { calls++ })
	if calls != 1 {
		t.Fatalf("Ensure must not run on Nothing, calls=%d", calls)
	}
}
