package identity

import (
	"sort"

	"github.com/refdeck/refdeck/internal/source"
)

// Collection is a membership set over identity keys, backing "saved to
// collection" state. Because membership is keyed by KeyOf, a record fetched
// twice (once from search, once already in the library) toggles the same
// entry.
type Collection struct {
	members map[string]bool
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{members: make(map[string]bool)}
}

// CollectionFromKeys builds a collection from previously saved keys.
func CollectionFromKeys(keys []string) *Collection {
	c := NewCollection()
	for _, k := range keys {
		if k != "" {
			c.members[k] = true
		}
	}
	return c
}

// Has reports whether the record's source is in the collection.
func (c *Collection) Has(rec *source.Record) bool {
	return c.members[KeyOf(rec)]
}

// Add puts the record's source in the collection. Returns false if it was
// already a member.
func (c *Collection) Add(rec *source.Record) bool {
	key := KeyOf(rec)
	if c.members[key] {
		return false
	}
	c.members[key] = true
	return true
}

// Remove takes the record's source out of the collection. Returns false if
// it was not a member.
func (c *Collection) Remove(rec *source.Record) bool {
	key := KeyOf(rec)
	if !c.members[key] {
		return false
	}
	delete(c.members, key)
	return true
}

// Toggle flips membership and reports the new state.
func (c *Collection) Toggle(rec *source.Record) bool {
	key := KeyOf(rec)
	if c.members[key] {
		delete(c.members, key)
		return false
	}
	c.members[key] = true
	return true
}

// Len returns the number of members.
func (c *Collection) Len() int {
	return len(c.members)
}

// Keys returns the member keys in sorted order, for stable persistence.
func (c *Collection) Keys() []string {
	keys := make([]string, 0, len(c.members))
	for k := range c.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
