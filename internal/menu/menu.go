package menu

import (
	"bytes"
	"encoding/json"
	"fmt"

	"restaurant/internal/model"
)

// DefaultCategories are the categories a brand new menu starts with.
var DefaultCategories = []string{"Beverages", "Appetizers", "Main Courses"}

// Status reports the outcome of a menu mutation.
// Missing categories and items are user-facing conditions, not errors.
type Status int

const (
	StatusOK Status = iota
	StatusCategoryNotFound
	StatusItemNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCategoryNotFound:
		return "category not found"
	case StatusItemNotFound:
		return "item not found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Menu maps category names to ordered menu entries.
// Categories keep the order they were first seen in.
type Menu struct {
	categories []string
	items      map[string][]model.MenuEntry
}

// NewMenu creates a menu with the given empty categories.
func NewMenu(categories ...string) *Menu {
	m := &Menu{
		categories: make([]string, 0, len(categories)),
		items:      make(map[string][]model.MenuEntry, len(categories)),
	}
	for _, c := range categories {
		m.addCategory(c)
	}
	return m
}

func (m *Menu) addCategory(category string) {
	if _, exists := m.items[category]; exists {
		return
	}
	m.categories = append(m.categories, category)
	m.items[category] = []model.MenuEntry{}
}

// Categories returns the category names in order.
func (m *Menu) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// Entries returns a copy of the entries of a category.
func (m *Menu) Entries(category string) ([]model.MenuEntry, bool) {
	entries, ok := m.items[category]
	if !ok {
		return nil, false
	}
	out := make([]model.MenuEntry, len(entries))
	copy(out, entries)
	return out, true
}

// Len returns the total number of entries across all categories.
func (m *Menu) Len() int {
	n := 0
	for _, entries := range m.items {
		n += len(entries)
	}
	return n
}

// Add appends an entry to an existing category.
func (m *Menu) Add(category string, entry model.MenuEntry) Status {
	entries, ok := m.items[category]
	if !ok {
		return StatusCategoryNotFound
	}
	m.items[category] = append(entries, entry)
	return StatusOK
}

// Update replaces the first entry named name in category.
func (m *Menu) Update(category, name string, entry model.MenuEntry) Status {
	entries, ok := m.items[category]
	if !ok {
		return StatusCategoryNotFound
	}
	for i := range entries {
		if entries[i].Name == name {
			entries[i] = entry
			return StatusOK
		}
	}
	return StatusItemNotFound
}

// Delete removes every entry named name from category.
func (m *Menu) Delete(category, name string) Status {
	entries, ok := m.items[category]
	if !ok {
		return StatusCategoryNotFound
	}
	kept := make([]model.MenuEntry, 0, len(entries))
	for _, e := range entries {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return StatusItemNotFound
	}
	m.items[category] = kept
	return StatusOK
}

// MarshalJSON encodes the menu as an object, categories in order.
func (m *Menu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range m.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(m.items[category])
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a category object, keeping key order.
func (m *Menu) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("menu must be a JSON object")
	}

	decoded := NewMenu()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var entries []model.MenuEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("category %q: %w", category, err)
		}
		for _, e := range entries {
			if e.Price < 0 {
				return fmt.Errorf("category %q: item %q has negative price", category, e.Name)
			}
		}

		decoded.addCategory(category)
		if entries != nil {
			decoded.items[category] = entries
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = *decoded
	return nil
}

// encode renders the menu the way it is written to disk.
func encode(m *Menu) ([]byte, error) {
	return json.MarshalIndent(m, "", "    ")
}

// decode parses a persisted menu.
func decode(data []byte) (*Menu, error) {
	m := NewMenu()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
