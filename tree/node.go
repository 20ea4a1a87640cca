// Package tree holds the node type and ordering helpers shared
// by the tree implementations and iterators in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single node of a binary tree. A node owns its children:
// no node is ever reachable from two parents, and there is no
// parent pointer.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

func NodeOf[T any](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

// Leftmost returns the node with no left child reached by
// following Left from n. It returns nil if n is nil.
func Leftmost[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Rightmost is Leftmost with Right.
func Rightmost[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	for n.Right != nil {
		n = n.Right
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf maps the result of a three-way comparison function
// (like cmp.Compare or strings.Compare) to an Order.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
