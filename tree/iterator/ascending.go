package iterator

import (
	"go.lepak.sg/bst/tree"
)

var _ Iterator[int] = (*Ascending[int])(nil)

// Ascending is an in-order iterator over a binary tree.
// It does not rely on parent pointers, instead keeping
// an internal stack of ancestors whose values have not
// been yielded yet. Memory use is O(height).
//
//	i := someBinaryTree.Ascending()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The result of mutating the tree while iterating over it is undefined.
type Ascending[T any] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	at      *tree.Node[T]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// Running everything up to (1) pushes the whole left spine,
// which is what pushLeft replicates in i.stack.
// Popping a node is f(n), and (2) is pushLeft(n.Right).

// NewAscending creates a new in-order iterator over the tree
// rooted at root. Nothing is visited until the first call to Next.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewAscending[T any](root *tree.Node[T], heightHint int) *Ascending[T] {
	return &Ascending[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
}

func (i *Ascending[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next returns true if there is a next value to yield with Item.
func (i *Ascending[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(i.at.Right)

	return true
}

// Item returns the value the iterator is at.
func (i *Ascending[T]) Item() T {
	return i.at.Value
}
