package order

import "restaurant/internal/model"

// Queue is a first-in-first-out queue of finalized orders.
// It is not safe for concurrent use.
type Queue struct {
	orders []model.Order
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an order to the tail.
func (q *Queue) Enqueue(order model.Order) {
	q.orders = append(q.orders, order)
}

// ProcessNext removes and returns the head of the queue.
// The boolean is false when no orders are pending.
func (q *Queue) ProcessNext() (model.Order, bool) {
	if len(q.orders) == 0 {
		return model.Order{}, false
	}
	head := q.orders[0]
	q.orders[0] = model.Order{}
	q.orders = q.orders[1:]
	return head, true
}

// PeekAll returns the pending orders in processing order without removing them.
func (q *Queue) PeekAll() []model.Order {
	out := make([]model.Order, len(q.orders))
	copy(out, q.orders)
	return out
}

// Len returns the number of pending orders.
func (q *Queue) Len() int {
	return len(q.orders)
}
