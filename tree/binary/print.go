package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/bst/tree"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// printFrame is what the recursive printer would have kept
// on the call stack for one node.
type printFrame[T any] struct {
	n              *tree.Node[T]
	prefix, branch string
	initial, isMid bool
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
//
// An empty tree is the empty string.
func (t *Tree[T]) String() string {
	return t.StringFunc(func(v T, _ bool) string {
		return fmt.Sprint(v)
	})
}

// StringFunc is like String, but each node is labelled with f(v, atCursor)
// instead of fmt.Sprint(v). atCursor is true for the node the cursor is on.
func (t *Tree[T]) StringFunc(f func(v T, atCursor bool) string) string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	stack := make([]printFrame[T], 0, t.height+1)
	stack = append(stack, printFrame[T]{n: t.root, initial: true})

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		prefix := fr.prefix
		if !fr.initial {
			sb.WriteString(prefix)
			if fr.isMid {
				prefix += treeMidContinue
				sb.WriteString(treeMidBranch)
			} else {
				prefix += treeLastContinue
				sb.WriteString(treeLastBranch)
			}
			sb.WriteString(fr.branch)
		}
		sb.WriteString(f(fr.n.Value, fr.n == t.at))
		sb.WriteRune('\n')

		// pushed in reverse, left is printed first
		if fr.n.Right != nil {
			stack = append(stack, printFrame[T]{
				n:      fr.n.Right,
				prefix: prefix,
				branch: treeRightBranch,
			})
		}

		if fr.n.Left != nil {
			stack = append(stack, printFrame[T]{
				n:      fr.n.Left,
				prefix: prefix,
				branch: treeLeftBranch,
				isMid:  fr.n.Right != nil,
			})
		}
	}

	return sb.String()
}
