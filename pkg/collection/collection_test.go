package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	assert.Empty(t, Map(nil, func(n int) int { return n }))
}

func TestFilter(t *testing.T) {
	odd := Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, odd)

	assert.Nil(t, Filter([]int{2, 4}, func(n int) bool { return n > 10 }))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", v)

	_, ok = First([]string{"a"}, func(s string) bool { return s == "z" })
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]int{1, 2}, func(n int) bool { return n == 2 }))
	assert.False(t, Contains([]int{1, 2}, func(n int) bool { return n == 3 }))
}

func TestSortByDoesNotMutate(t *testing.T) {
	in := []int{3, 1, 2}
	out := SortBy(in, func(a, b int) bool { return a < b })

	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestSortByIsStable(t *testing.T) {
	type pair struct{ k, seq int }
	in := []pair{{1, 0}, {2, 1}, {1, 2}, {2, 3}}
	out := SortBy(in, func(a, b pair) bool { return a.k < b.k })
	assert.Equal(t, []pair{{1, 0}, {1, 2}, {2, 1}, {2, 3}}, out)
}

func TestReduce(t *testing.T) {
	sum := Reduce([]float64{1.5, 2.5}, 0.0, func(acc, v float64) float64 { return acc + v })
	assert.InDelta(t, 4.0, sum, 0.001)

	assert.Equal(t, 10, Reduce(nil, 10, func(acc, v int) int { return acc + v }))
}
