// Package tree provides a binary tree node and iterative traversals over it.
package tree

// Node is one vertex of a binary tree. Each node exclusively owns its
// children; a node must never be reachable from two parents.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// New returns a leaf holding value.
func New[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// SetChildren wires both child slots and returns n. A nil child is absent.
func (n *Node[T]) SetChildren(left, right *Node[T]) *Node[T] {
	n.Left = left
	n.Right = right
	return n
}

func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Len returns the number of nodes reachable from root.
func Len[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	count := 0
	var stack Stack[*Node[T]]
	stack.Push(root)
	for {
		n, ok := stack.Pop()
		if !ok {
			return count
		}
		count++
		if n.Left != nil {
			stack.Push(n.Left)
		}
		if n.Right != nil {
			stack.Push(n.Right)
		}
	}
}
