package kv

// Cell gives one key ordinary mutable-state semantics: it is read from the
// store on first access and written back on every change. The in-memory
// value is authoritative; a failed write leaves it updated.
//
// Cells are not safe for concurrent use.
type Cell[T any] struct {
	store  *Store
	key    string
	def    T
	value  T
	loaded bool
}

// NewCell binds key to store with def as the fallback value. Nothing is read
// until the first Get.
func NewCell[T any](store *Store, key string, def T) *Cell[T] {
	return &Cell[T]{store: store, key: key, def: def}
}

func (c *Cell[T]) Key() string { return c.key }

// Get returns the current value, loading it on first use.
func (c *Cell[T]) Get() T {
	if !c.loaded {
		c.value = Get(c.store, c.key, c.def)
		c.loaded = true
	}
	return c.value
}

// Set replaces the value and persists it. The returned error only reports
// persistence; the new value is in effect either way.
func (c *Cell[T]) Set(v T) error {
	c.value = v
	c.loaded = true
	return Set(c.store, c.key, v)
}

// Update applies fn to the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) error {
	return c.Set(fn(c.Get()))
}
