package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var stack Stack[int]

	v, ok := stack.Pop()
	require.False(t, ok, "pop on empty stack should fail")
	require.Zero(t, v)

	for i := 0; i < 50; i++ {
		stack.Push(i)
	}
	require.Equal(t, 50, stack.Len())

	for i := 49; i >= 10; i-- {
		v, ok := stack.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 10, stack.Len())

	stack.Push(100)
	v, ok = stack.Pop()
	require.True(t, ok)
	assert.Equal(t, 100, v)

	for stack.Len() > 0 {
		_, ok := stack.Pop()
		require.True(t, ok)
	}
	_, ok = stack.Pop()
	assert.False(t, ok)
}

func TestStack_ClearsPoppedSlot(t *testing.T) {
	var stack Stack[*Node[int]]
	stack.Push(New(1))
	stack.Push(New(2))

	_, ok := stack.Pop()
	require.True(t, ok)
	assert.Nil(t, stack.items[:2][1])
}

func TestQueue(t *testing.T) {
	var queue Queue[int]

	v, ok := queue.Dequeue()
	require.False(t, ok, "dequeue on empty queue should fail")
	require.Zero(t, v)

	for i := 0; i < 200; i++ {
		queue.Enqueue(i)
	}
	require.Equal(t, 200, queue.Len())

	for i := 0; i < 150; i++ {
		v, ok := queue.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 50, queue.Len())

	for i := 200; i < 300; i++ {
		queue.Enqueue(i)
	}
	for i := 150; i < 300; i++ {
		v, ok := queue.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	assert.Equal(t, 0, queue.Len())

	_, ok = queue.Dequeue()
	assert.False(t, ok)

	queue.Enqueue(7)
	v, ok = queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}
