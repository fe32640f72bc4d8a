package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_PushPop(t *testing.T) {
	q := New[string]()

	q.Push("a", "b")
	q.Push("c")

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.Pop())
	assert.Equal(t, "b", q.Pop())
	assert.Equal(t, "c", q.Pop())
	assert.True(t, q.Empty())
}

func TestQueue_PopEmptyReturnsZero(t *testing.T) {
	q := New[int]()

	assert.Equal(t, 0, q.Pop())
}

func TestQueue_Clear(t *testing.T) {
	q := New[int]()
	q.Push(1, 2, 3)

	q.Clear()

	assert.True(t, q.Empty())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_Drain(t *testing.T) {
	q := New[int]()
	q.Push(1, 2, 3)

	items := q.Drain()

	assert.Equal(t, []int{1, 2, 3}, items)
	assert.True(t, q.Empty())
}

func TestQueue_DrainEmpty(t *testing.T) {
	q := New[int]()

	assert.Empty(t, q.Drain())
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(n)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1000, q.Len())
}
