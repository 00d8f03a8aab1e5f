// Package cache memoizes derived views. Keys encode everything a view
// depends on (state revision, month), so entries never need invalidation;
// old ones simply fall off the LRU end.
package cache

// Cache defines a generic cache interface
type Cache[T any] interface {
	// Get retrieves a value from the cache
	Get(key string) (T, bool)

	// Set stores a value in the cache
	Set(key string, data T)

	// Delete removes a key from the cache
	Delete(key string)

	// Size returns the current number of items in the cache
	Size() int
}

// Memoize returns the cached value for key, computing and storing it on a
// miss.
func Memoize[T any](c Cache[T], key string, compute func() T) T {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}
