package binary

import (
	"iter"
	"math/bits"

	"go.lepak.sg/bst/tree"
	"go.lepak.sg/bst/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree with a built-in cursor.
//
// Iterating (Ascending, Descending, All, Backward, InOrder, ...)
// never writes to the tree, so it is safe for concurrent iteration.
// Add and the cursor methods (Next, Previous, Reset) are not safe to
// call concurrently with anything else.
//
// Use New or NewFunc to create a Tree; the zero Tree has no ordering
// and will panic on Add. Tree should not be passed around as a value.
//
// This tree implementation does not support removal. It is also not
// self-balancing: inserting already sorted values builds a tree that is
// as tall as it has elements.
//
// Invariants:
//   - At any node N in the tree, all values in the subtree rooted at N.Left
//     compare less than N.Value
//   - At any node N in the tree, all values in the subtree rooted at N.Right
//     compare greater than or equal to N.Value
//   - Duplicates are allowed. A value equal to one already in the tree goes
//     to the right of it, so equal values come out of Ascending in the order
//     they were added
type Tree[T any] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
	// the cursor, see cursor.go. nil when unset.
	at *tree.Node[T]

	compare func(l, r T) tree.Order

	// no removal, so these only ever grow
	count  int
	height int
}

// New returns an empty Tree ordered by the natural order of T.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{
		compare: tree.Compare[T],
	}
}

// NewFunc returns an empty Tree ordered by cmp, which must
// return a negative number when l < r, zero when l == r
// and a positive number when l > r, like cmp.Compare.
// cmp must be a total order and must not change over the
// lifetime of the tree.
func NewFunc[T any](cmp func(l, r T) int) *Tree[T] {
	if cmp == nil {
		panic("nil compare func")
	}

	return &Tree[T]{
		compare: func(l, r T) tree.Order {
			return tree.OrderOf(cmp(l, r))
		},
	}
}

// Add inserts v into the tree. It always succeeds.
func (t *Tree[T]) Add(v T) {
	if t.compare == nil {
		panic("Tree was not created with New or NewFunc")
	}

	newnode := tree.NodeOf(v)
	t.count++

	if t.root == nil {
		t.root = newnode
		t.height = 1
		return
	}

	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order
	// depth of the new node
	depth := 1

	for n != nil {
		depth++
		cmp = t.compare(v, n.Value)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Equal, tree.Greater:
			// equal values go right, after the ones already here
			n, p = n.Right, n
		default:
			panic("unreachable")
		}
	}

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	case tree.Equal, tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	if depth > t.height {
		t.height = depth
	}
}

// Len returns the number of values added to the tree,
// duplicates included.
func (t *Tree[T]) Len() int {
	return t.count
}

// Height returns the number of levels in the tree, and the smallest
// number of levels a binary tree with the same number of nodes
// could have. Both are 0 for an empty tree.
func (t *Tree[T]) Height() (actual, ideal int) {
	return t.height, bits.Len(uint(t.count))
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch t.compare(k, n.Value) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Min returns the smallest value in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (v T, ok bool) {
	n := tree.Leftmost(t.root)
	if n == nil {
		return
	}
	return n.Value, true
}

// Max returns the largest value in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (v T, ok bool) {
	n := tree.Rightmost(t.root)
	if n == nil {
		return
	}
	return n.Value, true
}

// Less returns the largest value in the tree
// that is less than k.
// If there is no value in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Every node smaller than k that we pass on the way down
	// is a better candidate than the last one, since we only
	// pass it by going right.
	n := t.root

	for n != nil {
		switch t.compare(n.Value, k) {
		case tree.Less:
			p, ok = n.Value, true
			n = n.Right
		case tree.Equal, tree.Greater:
			n = n.Left
		default:
			panic("unreachable")
		}
	}

	return
}

// Greater returns the smallest value in the tree
// that is greater than k.
// If there is no value in the tree greater than k,
// s is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (s T, ok bool) {
	n := t.root

	for n != nil {
		switch t.compare(n.Value, k) {
		case tree.Greater:
			s, ok = n.Value, true
			n = n.Left
		case tree.Less, tree.Equal:
			n = n.Right
		default:
			panic("unreachable")
		}
	}

	return
}

// InOrder applies f to each value in the tree in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	i := t.Ascending()
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// PreOrder applies f to each value in the tree in pre-order
// (node, then left subtree, then right subtree).
// If f returns false, the iteration is stopped early.
// Adding the pre-order values to an empty tree in the same
// order rebuilds a tree of the same shape.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}

	stack := make([]*tree.Node[T], 0, t.height+1)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(n.Value) {
			return
		}

		// right first, so that left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// Ascending returns an iterator object that yields
// values from the tree in ascending order.
// It does not move the cursor.
func (t *Tree[T]) Ascending() *iterator.Ascending[T] {
	return iterator.NewAscending(t.root, t.height)
}

// Descending returns an iterator object that yields
// values from the tree in descending order.
// It does not move the cursor.
func (t *Tree[T]) Descending() *iterator.Descending[T] {
	return iterator.NewDescending(t.root, t.height)
}

// All returns the values in the tree in ascending order.
// Every range over the returned sequence starts again
// from the smallest value.
//
//	for k := range t.All() {
//		... do stuff with k ...
//	}
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		iterator.Seq[T](t.Ascending())(yield)
	}
}

// Backward is All in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		iterator.Seq[T](t.Descending())(yield)
	}
}

// AscendingCoroutine starts coroutine-style ascending iteration.
// The usage is as follows:
//
//	co := t.AscendingCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: AscendingCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) AscendingCoroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](t.Ascending())
}
