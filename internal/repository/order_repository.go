package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const schema = `
	CREATE TABLE IF NOT EXISTS processed_orders (
		id UUID PRIMARY KEY,
		summary TEXT NOT NULL,
		subtotal NUMERIC(12,2) NOT NULL CHECK (subtotal >= 0),
		total NUMERIC(12,2) NOT NULL CHECK (total >= 0),
		discounted BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS processed_order_lines (
		order_id UUID NOT NULL REFERENCES processed_orders(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		size TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		PRIMARY KEY (order_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_processed_orders_processed_at ON processed_orders(processed_at DESC);
`

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order archive.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// EnsureSchema creates the archive tables if they do not exist.
func (r *orderRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create archive schema")
		return fmt.Errorf("failed to create archive schema: %w", err)
	}
	return nil
}

// Record stores a processed order and its lines in a single transaction.
func (r *orderRepository) Record(ctx context.Context, order *model.Order) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	orderQuery := `
		INSERT INTO processed_orders (id, summary, subtotal, total, discounted, created_at)
		VALUES ($1, $2, $3::text::numeric, $4::text::numeric, $5, $6)
	`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.String(),
		order.Subtotal.StringFixed(2),
		order.Total.StringFixed(2),
		order.Discounted,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to record order")
		return fmt.Errorf("failed to record order: %w", err)
	}

	if err = r.recordLines(ctx, tx, order); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to record order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("line_count", len(order.Lines)).
		Msg("order recorded successfully")

	return nil
}

// recordLines inserts the order lines within the provided transaction.
func (r *orderRepository) recordLines(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	if len(order.Lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO processed_order_lines (order_id, position, name, size, price, quantity)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6)
	`

	batch := &pgx.Batch{}
	for i, line := range order.Lines {
		entry := line.Entry()
		batch.Queue(query, order.ID, i, entry.Name, entry.Size,
			decimal.NewFromFloat(entry.Price).StringFixed(2), line.Quantity())
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range order.Lines {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", order.ID.String()).
				Int("position", i).
				Msg("failed to record order line")
			return fmt.Errorf("failed to record order line: %w", err)
		}
	}

	return nil
}

// GetByID retrieves an archived order by its ID along with its lines.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProcessedOrder, error) {
	orderQuery := `
		SELECT id, summary, subtotal::text, total::text, discounted, created_at, processed_at
		FROM processed_orders
		WHERE id = $1
	`

	var (
		order           model.ProcessedOrder
		subtotal, total string
	)
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.Summary,
		&subtotal,
		&total,
		&order.Discounted,
		&order.CreatedAt,
		&order.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if order.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return nil, fmt.Errorf("failed to parse subtotal: %w", err)
	}
	if order.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("failed to parse total: %w", err)
	}

	linesQuery := `
		SELECT name, size, price::text, quantity
		FROM processed_order_lines
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order lines")
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line  model.ProcessedLine
			price string
		)
		if err := rows.Scan(&line.Name, &line.Size, &price, &line.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order line row")
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		if line.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse line price: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order line rows")
		return nil, fmt.Errorf("error iterating order lines: %w", err)
	}

	return &order, nil
}
