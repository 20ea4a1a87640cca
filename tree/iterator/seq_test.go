package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeq(t *testing.T) {
	var got []int
	for k := range Seq[int](NewAscending(newCompleteTree_2Tall(), 2)) {
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)

	got = nil
	for k := range Seq[int](NewDescending(newDoglegTree(), 3)) {
		got = append(got, k)
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5, 1}, got)
}

func TestSeq_Break(t *testing.T) {
	var got []int
	for k := range Seq[int](NewAscending(newCompleteTree_2Tall(), 0)) {
		if k > 3 {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSeq_Nil(t *testing.T) {
	n := 0
	for range Seq[int](nil) {
		n++
	}
	assert.Zero(t, n)

	var typedNil *Ascending[int]
	for range Seq[int](typedNil) {
		n++
	}
	assert.Zero(t, n)
}
