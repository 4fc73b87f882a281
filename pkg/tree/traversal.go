package tree

import (
	"iter"
	"slices"
)

// DepthFirst returns the values of the tree rooted at root in pre-order:
// a node, then its left subtree, then its right subtree. It returns an
// empty slice for a nil root.
//
// root must be acyclic; see Check.
func DepthFirst[T any](root *Node[T]) []T {
	return collect(PreOrder(root))
}

// BreadthFirst returns the values of the tree rooted at root level by
// level, left to right within each level. It returns an empty slice for a
// nil root.
//
// root must be acyclic; see Check.
func BreadthFirst[T any](root *Node[T]) []T {
	return collect(LevelOrder(root))
}

// PreOrder yields the same sequence as DepthFirst without materializing it.
func PreOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}

		var stack Stack[*Node[T]]
		stack.Push(root)
		for {
			n, ok := stack.Pop()
			if !ok {
				return
			}
			if !yield(n.Value) {
				return
			}
			// Right goes in first so the left subtree is popped next.
			if n.Right != nil {
				stack.Push(n.Right)
			}
			if n.Left != nil {
				stack.Push(n.Left)
			}
		}
	}
}

// LevelOrder yields the same sequence as BreadthFirst without materializing it.
func LevelOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}

		var queue Queue[*Node[T]]
		queue.Enqueue(root)
		for {
			n, ok := queue.Dequeue()
			if !ok {
				return
			}
			if !yield(n.Value) {
				return
			}
			if n.Left != nil {
				queue.Enqueue(n.Left)
			}
			if n.Right != nil {
				queue.Enqueue(n.Right)
			}
		}
	}
}

func collect[T any](seq iter.Seq[T]) []T {
	values := slices.Collect(seq)
	if values == nil {
		return []T{}
	}
	return values
}
