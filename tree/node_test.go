package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall() *Node[int] {
	return &Node[int]{
		Left: &Node[int]{
			Left: &Node[int]{
				Value: 1,
			},
			Value: 2,
			Right: &Node[int]{
				Value: 3,
			},
		},
		Value: 4,
		Right: &Node[int]{
			Left: &Node[int]{
				Value: 5,
			},
			Value: 6,
			Right: &Node[int]{
				Value: 7,
			},
		},
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare(2, 2))
	assert.Equal(t, Greater, Compare(3, 2))
	assert.Equal(t, Less, Compare("a", "b"))
}

func TestOrderOf(t *testing.T) {
	assert.Equal(t, Less, OrderOf(strings.Compare("a", "b")))
	assert.Equal(t, Equal, OrderOf(0))
	assert.Equal(t, Greater, OrderOf(42))
	assert.Equal(t, Less, OrderOf(-42))
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(5).String())
}

func TestLeftmostRightmost(t *testing.T) {
	tr := newCompleteTree_2Tall()

	assert.Equal(t, 1, Leftmost(tr).Value)
	assert.Equal(t, 7, Rightmost(tr).Value)
	assert.Equal(t, 5, Leftmost(tr.Right).Value)
	assert.Equal(t, 3, Rightmost(tr.Left).Value)

	assert.Nil(t, Leftmost[int](nil))
	assert.Nil(t, Rightmost[int](nil))

	leaf := NodeOf(9)
	assert.Same(t, leaf, Leftmost(leaf))
	assert.Same(t, leaf, Rightmost(leaf))
}
