package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bst/internal/testutils"
	"golang.org/x/exp/slices"
)

var buildImpls = []struct {
	name string
	f    func(num int, seed int64) *Tree[int]
}{
	{
		name: "distinct",
		f:    BuildRandom,
	},
	{
		name: "duplicates",
		f: func(num int, seed int64) *Tree[int] {
			return BuildRandomWithDuplicates(num, num/4+1, seed)
		},
	},
}

func TestBuildRandom(t *testing.T) {
	tr := BuildRandom(100, 1)
	assert.Equal(t, 100, tr.Len())

	got := testutils.Collect[int](tr.Ascending())
	for i, v := range got {
		assert.Equal(t, i, v)
	}

	// same seed, same tree
	assert.Equal(t, tr.String(), BuildRandom(100, 1).String())
	assert.Equal(t,
		BuildRandomWithDuplicates(100, 10, 1).String(),
		BuildRandomWithDuplicates(100, 10, 1).String())
}

// TestRandomTrees checks the ordering properties on a bunch of
// random trees, with and without duplicates.
func TestRandomTrees(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 50
	const size = 200

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())

		for _, impl := range buildImpls {
			t.Run(fmt.Sprintf("round=%d/%s", i, impl.name), func(t *testing.T) {
				tr := impl.f(size, seed)
				checkInvariant(t, tr)

				asc := testutils.Collect[int](tr.Ascending())
				desc := testutils.Collect[int](tr.Descending())

				require.Len(t, asc, size)
				assert.True(t, slices.IsSorted(asc), "ascending is not sorted")

				rev := slices.Clone(desc)
				slices.Reverse(rev)
				assert.Equal(t, asc, rev, "descending is not the reverse of ascending")

				assert.Equal(t, asc, walk(t, tr, tr.Next), "Next")
				assert.Equal(t, desc, walk(t, tr, tr.Previous), "Previous")

				actual, ideal := tr.Height()
				assert.GreaterOrEqual(t, actual, ideal)
			})
		}
	}
}

// Adding the pre-order traversal of a tree to an empty tree
// gives back the same tree.
func TestPreOrderRebuild(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20
	const size = 100

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())

		for _, impl := range buildImpls {
			t.Run(fmt.Sprintf("round=%d/%s", i, impl.name), func(t *testing.T) {
				tr := impl.f(size, seed)

				var preOrder []int
				tr.PreOrder(func(k int) bool {
					preOrder = append(preOrder, k)
					return true
				})

				trNew := build(preOrder...)
				assert.Equal(t, tr.String(), trNew.String(), "different tree was recreated")
			})
		}
	}
}

var trForBench *Tree[int]

func BenchmarkAdd(b *testing.B) {
	sizes := []int{10, 100, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				trForBench = BuildRandom(size, int64(i))
			}
		})
	}
}

var sinkForBench int

// Full sweeps: the stack iterator is O(n), the cursor is O(n*height).
func BenchmarkSweep(b *testing.B) {
	sizes := []int{100, 10000}

	for _, size := range sizes {
		tr := BuildRandom(size, 1)

		b.Run(fmt.Sprintf("size=%d/ascending", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for v := range tr.All() {
					sinkForBench += v
				}
			}
		})

		b.Run(fmt.Sprintf("size=%d/cursor", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for tr.Next() {
					v, _ := tr.Current()
					sinkForBench += v
				}
			}
		})
	}
}
