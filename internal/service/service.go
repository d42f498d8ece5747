package service

import (
	"context"

	"restaurant/internal/menu"
	"restaurant/internal/model"
)

// MenuService owns the in-memory menu and its current catalog snapshot.
type MenuService interface {
	// Catalog returns the snapshot orders are built against.
	Catalog() *menu.Catalog

	// Categories returns the category names in order.
	Categories() []string

	// AddItem appends an entry to a category.
	AddItem(category string, entry model.MenuEntry) menu.Status

	// UpdateItem replaces the entry named name in category.
	UpdateItem(category, name string, entry model.MenuEntry) menu.Status

	// DeleteItem removes the entry named name from category.
	DeleteItem(category, name string) menu.Status

	// Save persists the menu to the location it was loaded from.
	Save(ctx context.Context) error

	// Location returns where the menu is persisted.
	Location() string
}

// OrderService defines operations on pending orders.
type OrderService interface {
	// Place queues a finalized order.
	Place(order model.Order)

	// ProcessNext removes the oldest pending order and archives it.
	// ok is false when no orders are pending. A non-nil error means the
	// order was processed but could not be archived.
	ProcessNext(ctx context.Context) (order model.Order, ok bool, err error)

	// Pending lists pending orders in processing order.
	Pending() []model.Order
}
