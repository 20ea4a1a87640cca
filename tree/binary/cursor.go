package binary

import (
	"go.lepak.sg/bst/tree"
)

// The cursor is a single position inside the tree, shared by everyone
// holding the tree. It is either unset (t.at == nil) or on a node.
//
// There are no parent pointers, so stepping to an ancestor walks down
// from the root again. Each step is O(height) time and O(1) memory, and
// a full sweep with Next is O(n*height). Ascending is O(n) for the same
// sweep but holds O(height) nodes on its stack for as long as it lives.

// Current returns the value under the cursor.
// If the cursor is unset, ok is false.
func (t *Tree[T]) Current() (v T, ok bool) {
	if t.at == nil {
		return
	}
	return t.at.Value, true
}

// Next moves the cursor to the next value in ascending order
// and returns true. An unset cursor moves to the smallest value.
// If the cursor was on the largest value, it becomes unset and
// Next returns false; the call after that starts from the
// smallest value again. Next on an empty tree returns false.
func (t *Tree[T]) Next() bool {
	switch {
	case t.at == nil:
		t.at = tree.Leftmost(t.root)
	case t.at.Right != nil:
		t.at = tree.Leftmost(t.at.Right)
	default:
		t.at, _ = t.ancestors(t.at)
	}

	return t.at != nil
}

// Previous is Next in descending order. An unset cursor moves
// to the largest value, and stepping back from the smallest value
// unsets the cursor.
func (t *Tree[T]) Previous() bool {
	switch {
	case t.at == nil:
		t.at = tree.Rightmost(t.root)
	case t.at.Left != nil:
		t.at = tree.Rightmost(t.at.Left)
	default:
		_, t.at = t.ancestors(t.at)
	}

	return t.at != nil
}

// Reset unsets the cursor, so that the next call to Next
// or Previous starts from the smallest or largest value.
// Iterating over the tree never does this implicitly.
func (t *Tree[T]) Reset() {
	t.at = nil
}

// ancestors walks from the root down to target, along the same path Add
// took to insert it, and returns the deepest ancestor that has target in
// its left subtree (the ancestor that comes next in order) and the
// deepest one that has target in its right subtree (the one that comes
// before it). Either may be nil.
//
// Equal values always went right on insertion, so the walk does too;
// comparing alone can't tell equal nodes apart, so we stop on identity.
func (t *Tree[T]) ancestors(target *tree.Node[T]) (next, prev *tree.Node[T]) {
	n := t.root

	for n != target {
		if n == nil {
			panic("cursor node is not in the tree")
		}

		switch t.compare(target.Value, n.Value) {
		case tree.Less:
			n, next = n.Left, n
		case tree.Equal, tree.Greater:
			n, prev = n.Right, n
		default:
			panic("unreachable")
		}
	}

	return
}
