package cache

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/vvka-141/contree/pkg/contree"
)

// Memory is an in-process cache safe for concurrent use.
type Memory[V any] struct {
	entries *xsync.Map[string, V]
}

// NewMemory creates an empty memory cache.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{entries: xsync.NewMap[string, V]()}
}

// Has reports whether key is cached.
func (m *Memory[V]) Has(key string) bool {
	_, ok := m.entries.Load(key)
	return ok
}

// Get returns the value cached under key.
func (m *Memory[V]) Get(key string) (V, bool) {
	return m.entries.Load(key)
}

// Set caches value under key.
func (m *Memory[V]) Set(key string, value V) {
	m.entries.Store(key, value)
}

// Len returns the number of cached entries.
func (m *Memory[V]) Len() int {
	return m.entries.Size()
}

// Clear removes every entry.
func (m *Memory[V]) Clear() {
	m.entries.Clear()
}

// Verify Memory implements contree.Cache
var _ contree.Cache[[]contree.File] = (*Memory[[]contree.File])(nil)
