package memory

import (
	"sync"

	"github.com/hotelops/hotel-ops-api/internal/tenancy"
)

// Collection is an ordered in-memory sequence of records of one entity type,
// guarded for concurrent use. New records are inserted at the head, matching
// the reverse-chronological order the listing endpoints expose.
type Collection[T tenancy.Record] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T tenancy.Record]() *Collection[T] {
	return &Collection[T]{}
}

// All returns a copy of the collection in order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T{}, c.items...)
}

// Insert prepends a record.
func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the record matching (id, tenantID) in place, preserving its
// position. Returns false when no record matches.
func (c *Collection[T]) Replace(id, tenantID string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if existing.GetID() == id && existing.GetTenantID() == tenantID {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove deletes the record matching (id, tenantID). Returns false when no
// record matches.
func (c *Collection[T]) Remove(id, tenantID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if existing.GetID() == id && existing.GetTenantID() == tenantID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of records across all tenants.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
