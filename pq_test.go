package gsearch

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_Ordering(t *testing.T) {
	queue := NewPriorityQueue[string](Comparator[int](cmp.Compare[int]))
	queue.Insert("five", 5)
	queue.Insert("one", 1)
	queue.Insert("three", 3)
	queue.Insert("zero", 0)

	require.Equal(t, 4, queue.Len())

	var got []string
	for queue.Len() > 0 {
		value, _, err := queue.ExtractMin()
		require.NoError(t, err)
		got = append(got, value)
	}
	assert.Equal(t, []string{"zero", "one", "three", "five"}, got)
}

func TestPriorityQueue_TiesKeepInsertionOrder(t *testing.T) {
	queue := NewPriorityQueue[string](Comparator[float64](cmp.Compare[float64]))
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		queue.Insert(name, 2.5)
	}
	queue.Insert("first", 1)

	var got []string
	for queue.Len() > 0 {
		value, priority, err := queue.ExtractMin()
		require.NoError(t, err)
		if value == "first" {
			assert.Equal(t, 1.0, priority)
		}
		got = append(got, value)
	}
	assert.Equal(t, []string{"first", "a", "b", "c", "d", "e", "f", "g", "h"}, got)
}

func TestPriorityQueue_Empty(t *testing.T) {
	queue := NewPriorityQueue[int](Comparator[int](cmp.Compare[int]))

	_, _, err := queue.ExtractMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	_, _, err = queue.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestPriorityQueue_PeekDoesNotRemove(t *testing.T) {
	queue := NewPriorityQueue[string](Comparator[int](cmp.Compare[int]))
	queue.Insert("b", 2)
	queue.Insert("a", 1)

	value, priority, err := queue.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", value)
	assert.Equal(t, 1, priority)
	assert.Equal(t, 2, queue.Len())

	value, _, err = queue.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "a", value)
}

func TestPriorityQueue_Comparator(t *testing.T) {
	descending := Comparator[int](func(a, b int) int { return cmp.Compare(b, a) })
	queue := NewPriorityQueue[string](descending)
	queue.Insert("low", 1)
	queue.Insert("high", 9)

	assert.Equal(t, 1, queue.Comparator()(3, 4))

	value, _, err := queue.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "high", value)
}

func TestPriorityQueue_InterleavedInsertAndExtract(t *testing.T) {
	queue := NewPriorityQueue[string](Comparator[int](cmp.Compare[int]))

	queue.Insert("c", 3)
	queue.Insert("a", 1)
	value, _, err := queue.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "a", value)

	queue.Insert("b", 2)
	queue.Insert("a2", 1)
	queue.Insert("c2", 3)

	var order []string
	for queue.Len() > 0 {
		value, _, err := queue.ExtractMin()
		require.NoError(t, err)
		order = append(order, value)
	}
	assert.Equal(t, []string{"a2", "b", "c", "c2"}, order)
}
