package service

import (
	"context"
	"fmt"

	"restaurant/internal/model"
	"restaurant/internal/order"
	"restaurant/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	queue   *order.Queue
	archive repository.OrderRepository
	logger  zerolog.Logger
}

// NewOrderService creates a new order service.
// archive may be nil, in which case processed orders are not recorded.
func NewOrderService(queue *order.Queue, archive repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		queue:   queue,
		archive: archive,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// Place queues a finalized order.
func (s *orderService) Place(o model.Order) {
	s.queue.Enqueue(o)

	s.logger.Info().
		Str("order_id", o.ID.String()).
		Int("line_count", len(o.Lines)).
		Str("total", o.Total.StringFixed(2)).
		Bool("discounted", o.Discounted).
		Int("pending", s.queue.Len()).
		Msg("order queued")
}

// ProcessNext removes the oldest pending order and archives it.
func (s *orderService) ProcessNext(ctx context.Context) (model.Order, bool, error) {
	o, ok := s.queue.ProcessNext()
	if !ok {
		s.logger.Debug().Msg("no orders pending")
		return model.Order{}, false, nil
	}

	s.logger.Info().
		Str("order_id", o.ID.String()).
		Int("pending", s.queue.Len()).
		Msg("order processed")

	if s.archive == nil {
		return o, true, nil
	}

	if err := s.archive.Record(ctx, &o); err != nil {
		s.logger.Error().Err(err).Str("order_id", o.ID.String()).Msg("failed to archive order")
		return o, true, fmt.Errorf("failed to archive order %s: %w", o.ID, err)
	}

	return o, true, nil
}

// Pending lists pending orders in processing order.
func (s *orderService) Pending() []model.Order {
	return s.queue.PeekAll()
}
