package repo

import "sync"

// cell is a compute-once cache for a derived value.
type cell[T any] struct {
	once sync.Once
	val  T
	err  error
}

// get returns the cached value, computing it on first use. The compute
// function runs at most once; its error is cached along with the value.
func (c *cell[T]) get(compute func() (T, error)) (T, error) {
	c.once.Do(func() {
		c.val, c.err = compute()
	})
	return c.val, c.err
}
