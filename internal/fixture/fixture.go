// Package fixture builds the sample trees used by the command and tests.
package fixture

import "github.com/siddhu225/interview-prep/pkg/tree"

// Letters returns
//
//	    a
//	   / \
//	  b   c
//	 / \   \
//	d   e   f
func Letters() *tree.Node[string] {
	a, b, c := tree.New("a"), tree.New("b"), tree.New("c")
	d, e, f := tree.New("d"), tree.New("e"), tree.New("f")

	a.SetChildren(b, c)
	b.SetChildren(d, e)
	c.SetChildren(nil, f)
	return a
}
