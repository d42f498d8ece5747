package model

import "fmt"

// MenuEntry represents one sellable item on the menu.
type MenuEntry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Size  string  `json:"size"`
}

// String renders the entry the way it is listed to customers.
func (e MenuEntry) String() string {
	return fmt.Sprintf("%s - $%.2f (%s)", e.Name, e.Price, e.Size)
}
