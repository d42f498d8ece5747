package order

import (
	"testing"

	"restaurant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, index, quantity int) model.Order {
	t.Helper()
	builder := NewBuilder(coffeeAndMuffin(), DefaultPricing())
	require.NoError(t, builder.Add(index, quantity))
	order, _, err := builder.Finalize()
	require.NoError(t, err)
	return order
}

func TestQueue_EnqueueThenProcess(t *testing.T) {
	q := NewQueue()
	order := buildOrder(t, 0, 1)

	q.Enqueue(order)
	assert.Equal(t, 1, q.Len())

	processed, ok := q.ProcessNext()
	require.True(t, ok)
	assert.Equal(t, order, processed)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.PeekAll())
}

func TestQueue_ProcessNextEmpty(t *testing.T) {
	q := NewQueue()

	processed, ok := q.ProcessNext()
	assert.False(t, ok)
	assert.Equal(t, model.Order{}, processed)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	first := buildOrder(t, 0, 1)
	second := buildOrder(t, 1, 2)
	third := buildOrder(t, 0, 3)

	q.Enqueue(first)
	q.Enqueue(second)
	q.Enqueue(third)

	for _, expected := range []model.Order{first, second, third} {
		processed, ok := q.ProcessNext()
		require.True(t, ok)
		assert.Equal(t, expected.ID, processed.ID)
	}

	_, ok := q.ProcessNext()
	assert.False(t, ok)
}

func TestQueue_PeekAllDoesNotMutate(t *testing.T) {
	q := NewQueue()
	q.Enqueue(buildOrder(t, 0, 1))
	q.Enqueue(buildOrder(t, 1, 1))

	first := q.PeekAll()
	second := q.PeekAll()

	assert.Equal(t, first, second)
	assert.Equal(t, 2, q.Len())

	// Modifying the returned slice does not affect the queue
	first[0] = model.Order{}
	assert.Equal(t, second, q.PeekAll())
}

func TestQueue_EnqueueAfterDrain(t *testing.T) {
	q := NewQueue()
	q.Enqueue(buildOrder(t, 0, 1))
	_, _ = q.ProcessNext()

	order := buildOrder(t, 1, 1)
	q.Enqueue(order)

	processed, ok := q.ProcessNext()
	require.True(t, ok)
	assert.Equal(t, order.ID, processed.ID)
}
