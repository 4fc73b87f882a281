package tree

import "fmt"

// Order names a traversal order.
type Order string

const (
	DepthOrder   Order = "depth"
	BreadthOrder Order = "breadth"
)

// Traverse returns the values under root in the given order.
func Traverse[T any](root *Node[T], order Order) ([]T, error) {
	switch order {
	case DepthOrder:
		return DepthFirst(root), nil
	case BreadthOrder:
		return BreadthFirst(root), nil
	default:
		return nil, fmt.Errorf("unknown traversal order %q", order)
	}
}
