package list

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fork(suffixes ...string) func(string) List[string] {
	return func(s string) List[string] {
		out := make([]string, 0, len(suffixes))
		for _, suffix := range suffixes {
			out = append(out, s+suffix)
		}
		return Of(out...)
	}
}

func TestBind_FlattensOneLevel(t *testing.T) {
	t.Parallel()

	out := Of("start").Bind(fork("A", "B"))
	assert.Equal(t, []string{"startA", "startB"}, out.Values())
}

func TestChain_SixElementsInInputOrder(t *testing.T) {
	t.Parallel()

	out := Unit("start").Chain(fork("A", "B"), fork("x", "y", "z"))

	assert.Equal(t, 6, out.Len())
	assert.Equal(t,
		[]string{"startAx", "startAy", "startAz", "startBx", "startBy", "startBz"},
		out.Values())
}

func TestBind_KeepsDuplicates(t *testing.T) {
	t.Parallel()

	out := Of(1, 1, 2).Bind(func(v int) List[int] { return Of(v, v) })
	assert.Equal(t, []int{1, 1, 1, 1, 2, 2}, out.Values())
}

func TestBind_ChangesElementType(t *testing.T) {
	t.Parallel()

	out := Bind(Of(2, 3), func(v int) List[string] {
		return Of(strings.Repeat("*", v))
	})
	assert.Equal(t, []string{"**", "***"}, out.Values())
}

func TestChain_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	executed := 0
	out := Empty[string]().Chain(func(s string) List[string] {
		executed++
		return Of(s)
	})

	assert.True(t, out.IsEmpty())
	assert.Zero(t, executed)
}

func TestOf_CopiesInput(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b"}
	l := Of(items...)
	items[0] = "changed"

	values := l.Values()
	values[1] = "changed"

	assert.Equal(t, []string{"a", "b"}, l.Values())
}

func TestMapAndFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1", "2"}, Map(Of(1, 2), strconv.Itoa).Values())

	nested := Of(Of(1, 2), Empty[int](), Of(3))
	assert.Equal(t, []int{1, 2, 3}, Flatten(nested).Values())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[a b]", Of("a", "b").String())
	assert.Equal(t, "[]", Empty[int]().String())
}
