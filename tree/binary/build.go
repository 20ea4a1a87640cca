package binary

import (
	"math/rand"
)

// BuildRandom builds a binary tree with num nodes.
// Node values are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	tr := New[int]()

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for _, n := range nodes {
		tr.Add(n)
	}

	return tr
}

// BuildRandomWithDuplicates builds a binary tree with num nodes.
// Each node value is drawn from the range [0, max), so once num
// gets close to max, duplicates are all but certain.
// Like BuildRandom, the same seed gives the same tree.
// max must be positive.
func BuildRandomWithDuplicates(num, max int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int]()

	for i := 0; i < num; i++ {
		tr.Add(rd.Intn(max))
	}

	return tr
}
