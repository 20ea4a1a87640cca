// Package testutils holds assertions shared by the tree tests.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Helper()
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Each receive waits at most timeout, so the producer
// may still be running when this is called.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Error("at the end of draining, channel was empty but unclosed")
	}
}

// Iterator matches iterator.Iterator without importing it,
// so the iterator package's own tests can use these helpers.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Collect runs i to exhaustion and returns everything it yielded.
// A nil slice is returned if i yields nothing.
func Collect[T any](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
