package menu

import (
	"context"
)

// Store defines the interface for loading and saving a persisted menu.
type Store interface {
	// Load reads the menu stored at location.
	// Failures wrap model.ErrMenuLoad.
	Load(ctx context.Context, location string) (*Menu, error)

	// Save overwrites location with the full menu.
	// Failures wrap model.ErrMenuSave. Writes are not transactional.
	Save(ctx context.Context, m *Menu, location string) error
}
