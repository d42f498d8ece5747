package repository

import (
	"context"

	"restaurant/internal/model"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for the processed order archive.
type OrderRepository interface {
	// EnsureSchema creates the archive tables if they do not exist.
	EnsureSchema(ctx context.Context) error

	// Record stores a processed order and its lines in a single transaction.
	Record(ctx context.Context, order *model.Order) error

	// GetByID retrieves an archived order by its ID along with its lines.
	// It returns nil when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProcessedOrder, error)
}
