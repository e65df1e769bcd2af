package metrics

import (
	"testing"

	"github.com/ib-77/bindchain/pkg/monad"
	"github.com/ib-77/bindchain/pkg/monad/list"
	"github.com/ib-77/bindchain/pkg/monad/maybe"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inc(v int) maybe.Maybe[int] {
	return maybe.Just(v + 1)
}

func stop(int) maybe.Maybe[int] {
	return maybe.Nothing[int]()
}

func TestObserve_CountsInvokedStepsOnly(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	out := monad.Chain(maybe.Just(1),
		Observe(rec, "optional", "inc", inc),
		Observe(rec, "optional", "stop", stop),
		Observe(rec, "optional", "after", inc),
	)
	require.True(t, out.IsNothing())

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.steps.WithLabelValues("optional", "inc")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.steps.WithLabelValues("optional", "stop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.terminal.WithLabelValues("optional", "stop")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.steps.WithLabelValues("optional", "after")))
}

func TestObserve_NilRecorderIsPassThrough(t *testing.T) {
	t.Parallel()

	f := Observe[int, maybe.Maybe[int]](nil, "optional", "inc", inc)
	assert.Equal(t, maybe.Just(2), f(1))
}

func TestSamples(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	pair := Observe(rec, "sequence", "pair", func(s string) list.List[string] {
		return list.Of(s, s)
	})
	out := list.Of("a", "b").Chain(pair, pair)
	require.Equal(t, 8, out.Len())

	samples, err := rec.Samples()
	require.NoError(t, err)
	assert.Equal(t, []Sample{
		{Name: "bindchain_steps_total", Kind: "sequence", Step: "pair", Value: 6},
	}, samples)
}
