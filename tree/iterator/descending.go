package iterator

import (
	"go.lepak.sg/bst/tree"
)

var _ Iterator[int] = (*Descending[int])(nil)

// Descending is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element. It yields exactly the reverse of
// Ascending over the same tree, including the order of
// equal elements.
//
//	i := someBinaryTree.Descending()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The result of mutating the tree while iterating over it is undefined.
type Descending[T any] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	at      *tree.Node[T]
	started bool
}

// NewDescending returns a new Descending iterator over the tree
// rooted at root. heightHint works the same as in NewAscending.
func NewDescending[T any](root *tree.Node[T], heightHint int) *Descending[T] {
	return &Descending[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
}

func (i *Descending[T]) pushRight(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Next returns true if there is a next value to yield with Item.
func (i *Descending[T]) Next() bool {
	// Basically Ascending.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushRight(i.root)
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushRight(i.at.Left)

	return true
}

// Item returns the value the iterator is at.
func (i *Descending[T]) Item() T {
	return i.at.Value
}
