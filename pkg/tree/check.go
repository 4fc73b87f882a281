package tree

import (
	"errors"
	"fmt"
)

// ErrNotTree is returned by Check when a node is reachable more than once.
var ErrNotTree = errors.New("not a tree")

// Check reports whether the structure under root is a tree: no node is its
// own ancestor and no node has two parents. A nil root is an empty tree.
func Check[T any](root *Node[T]) error {
	if root == nil {
		return nil
	}

	seen := make(map[*Node[T]]struct{})
	var stack Stack[*Node[T]]
	stack.Push(root)
	for {
		n, ok := stack.Pop()
		if !ok {
			return nil
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("node %v reached twice: %w", n.Value, ErrNotTree)
		}
		seen[n] = struct{}{}
		if n.Right != nil {
			stack.Push(n.Right)
		}
		if n.Left != nil {
			stack.Push(n.Left)
		}
	}
}
