// Package asset provides a reference-counted cache for shared image handles.
// Many entities typically reference the same underlying image; the cache
// guarantees one load per name and keeps the handle alive for as long as any
// holder has it acquired.
package asset

import "fmt"

// Handle is the renderable resource the cache manages. It matches the core's
// image-handle contract so cached images can be attached to entities
// directly.
type Handle interface {
	Size() (width, height float32)
}

// Loader produces a handle for a name. It is invoked at most once per name
// while the entry stays referenced.
type Loader func(name string) (Handle, error)

type entry struct {
	handle Handle
	refs   int
}

// Cache is a name-keyed, reference-counted handle cache. It is used from the
// frame loop only and therefore does no locking.
type Cache struct {
	loader  Loader
	entries map[string]*entry
}

// NewCache creates a cache backed by the given loader.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string]*entry),
	}
}

// Acquire returns the shared handle for name, loading it on first use, and
// increments its reference count.
func (c *Cache) Acquire(name string) (Handle, error) {
	if e, ok := c.entries[name]; ok {
		e.refs++
		return e.handle, nil
	}

	handle, err := c.loader(name)
	if err != nil {
		return nil, fmt.Errorf("load asset %q: %w", name, err)
	}

	c.entries[name] = &entry{handle: handle, refs: 1}
	return handle, nil
}

// Release drops one reference to name. The entry is evicted when the last
// reference is released; releasing an unknown name is a no-op.
func (c *Cache) Release(name string) {
	e, ok := c.entries[name]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(c.entries, name)
	}
}

// Refs returns the current reference count for name.
func (c *Cache) Refs(name string) int {
	if e, ok := c.entries[name]; ok {
		return e.refs
	}
	return 0
}

// Len returns the number of loaded entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
