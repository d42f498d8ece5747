package menu

import "restaurant/internal/model"

// Catalog is a flattened, index-addressable snapshot of a menu.
// Indices are only meaningful for the snapshot they were taken from.
type Catalog struct {
	entries []model.MenuEntry
}

// NewCatalog flattens m in category-then-insertion order.
func NewCatalog(m *Menu) *Catalog {
	entries := make([]model.MenuEntry, 0, m.Len())
	for _, category := range m.categories {
		entries = append(entries, m.items[category]...)
	}
	return &Catalog{entries: entries}
}

// ItemAt returns the entry at index.
func (c *Catalog) ItemAt(index int) (model.MenuEntry, error) {
	if index < 0 || index >= len(c.entries) {
		return model.MenuEntry{}, model.ErrOutOfRange
	}
	return c.entries[index], nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in index order.
func (c *Catalog) Entries() []model.MenuEntry {
	out := make([]model.MenuEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
