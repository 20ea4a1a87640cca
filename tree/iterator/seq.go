package iterator

import (
	"iter"
)

// Seq adapts an Iterator to a range-over-func sequence.
// The sequence can only be ranged over once, since the
// Iterator it wraps is consumed in the process. Tree types
// hand out a fresh Iterator for every sequence they return.
//
//	for k := range iterator.Seq(someTree.Ascending()) {
//		... do stuff with k ...
//	}
func Seq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if i == nil {
			return
		}
		for i.Next() {
			if !yield(i.Item()) {
				return
			}
		}
	}
}
