package tree

import (
	"iter"
	"slices"
)

// PreOrderFunc walks every tree of a forest in pre-order. children is the
// adjacency function; its order is the visiting order among siblings.
func PreOrderFunc[T any](roots iter.Seq[T], children func(T) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack Stack[T]
		pushReversed := func(seq iter.Seq[T]) {
			items := slices.Collect(seq)
			for i := len(items) - 1; i >= 0; i-- {
				stack.Push(items[i])
			}
		}

		pushReversed(roots)
		for {
			n, ok := stack.Pop()
			if !ok {
				return
			}
			if !yield(n) {
				return
			}
			pushReversed(children(n))
		}
	}
}

// LevelOrderFunc walks a forest breadth first. All roots form the first level.
func LevelOrderFunc[T any](roots iter.Seq[T], children func(T) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var queue Queue[T]
		for root := range roots {
			queue.Enqueue(root)
		}
		for {
			n, ok := queue.Dequeue()
			if !ok {
				return
			}
			if !yield(n) {
				return
			}
			for child := range children(n) {
				queue.Enqueue(child)
			}
		}
	}
}

// Children adapts a binary node to the adjacency function of PreOrderFunc
// and LevelOrderFunc, yielding the present children left to right.
func Children[T any](n *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if n.Left != nil && !yield(n.Left) {
			return
		}
		if n.Right != nil {
			yield(n.Right)
		}
	}
}
