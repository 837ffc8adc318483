package lodestar

import (
	"sync"
	"sync/atomic"
)

// onceCell is a write-once cell: the first writer wins, every later write is
// discarded, and all readers observe the single stored value. Racing
// initializers are coordinated so exactly one value is ever constructed.
type onceCell[T any] struct {
	once sync.Once
	ptr  atomic.Pointer[T]
}

// getOrInit stores the value produced by f on first call and returns the
// stored value on every call. f runs at most once process-wide.
func (c *onceCell[T]) getOrInit(f func() T) *T {
	c.once.Do(func() {
		v := f()
		c.ptr.Store(&v)
	})
	return c.ptr.Load()
}

// tryGet returns the stored value without initializing, or nil when the cell
// is still empty.
func (c *onceCell[T]) tryGet() *T {
	return c.ptr.Load()
}
