package registry

import "fmt"

// Catalog is the fixed, ordered list of registry IDs for one repeated UI group.
// Position in the catalog is position in the rendered list.
// A Catalog is never modified after construction.
type Catalog struct {
	group       string
	description string
	entries     []Entry
}

// NewCatalog creates a catalog for group from the given entries.
// The entries are copied.
func NewCatalog(group, description string, entries ...Entry) *Catalog {
	return &Catalog{
		group:       group,
		description: description,
		entries:     append([]Entry(nil), entries...),
	}
}

// Sequence creates a catalog of size IDs named "<group>-<i>".
// This is the shape of every hand-authored list catalog on the landing page.
func Sequence(group, description string, size int) *Catalog {
	entries := make([]Entry, 0, size)
	for i := 0; i < size; i++ {
		entries = append(entries, Entry{ID: ID(fmt.Sprintf("%s-%d", group, i))})
	}
	return &Catalog{group: group, description: description, entries: entries}
}

// Group returns the group name.
func (c *Catalog) Group() string {
	return c.group
}

// Description returns the group description.
func (c *Catalog) Description() string {
	return c.description
}

// Len returns the number of positions the catalog assigns.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index, or false when index is outside the catalog.
func (c *Catalog) At(index int) (Entry, bool) {
	if index < 0 || index >= len(c.entries) {
		return Entry{ID: NoID}, false
	}
	return c.entries[index], true
}

// IDs returns the catalog IDs in order.
func (c *Catalog) IDs() []ID {
	ids := make([]ID, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Entries returns a copy of the catalog entries in order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}
