package order

import (
	"math"
	"strconv"
	"strings"
	"time"

	"restaurant/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity bounds both a single line and the running order quantity.
const MaxQuantity = math.MaxInt32

// Catalog is the read-only view of menu entries an order is built against.
type Catalog interface {
	ItemAt(index int) (model.MenuEntry, error)
	Len() int
}

// ParseIndex parses a catalog index typed by the customer.
// It returns model.ErrInvalidSelection unless input is an integer in [0, length).
func ParseIndex(input string, length int) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, model.ErrInvalidSelection
	}
	if index < 0 || index >= length {
		return 0, model.ErrInvalidSelection
	}
	return index, nil
}

// ParseQuantity parses a quantity typed by the customer.
// It returns model.ErrInvalidQuantity unless input is an integer in [1, MaxQuantity].
func ParseQuantity(input string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || quantity <= 0 || quantity > MaxQuantity {
		return 0, model.ErrInvalidQuantity
	}
	return quantity, nil
}

// IsAffirmative reports whether the customer asked to add more items.
func IsAffirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// Builder accumulates order lines against one catalog snapshot.
type Builder struct {
	catalog  Catalog
	pricing  Pricing
	lines    []model.OrderLine
	subtotal decimal.Decimal
	quantity int
}

// NewBuilder creates a builder for a single order.
func NewBuilder(catalog Catalog, pricing Pricing) *Builder {
	return &Builder{
		catalog:  catalog,
		pricing:  pricing,
		subtotal: decimal.Zero,
	}
}

// Add appends quantity of the entry at index.
// Invalid input leaves previously accepted lines untouched.
func (b *Builder) Add(index, quantity int) error {
	entry, err := b.catalog.ItemAt(index)
	if err != nil {
		return model.ErrInvalidSelection
	}

	line, err := model.NewOrderLine(entry, quantity)
	if err != nil {
		return err
	}
	if quantity > MaxQuantity-b.quantity {
		return model.ErrInvalidQuantity
	}

	b.lines = append(b.lines, line)
	b.subtotal = b.subtotal.Add(line.Amount())
	b.quantity += quantity
	return nil
}

// Lines returns a copy of the accepted lines.
func (b *Builder) Lines() []model.OrderLine {
	out := make([]model.OrderLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Quantity returns the running total quantity.
func (b *Builder) Quantity() int {
	return b.quantity
}

// Subtotal returns the running undiscounted subtotal.
func (b *Builder) Subtotal() decimal.Decimal {
	return b.subtotal
}

// Finalize prices the order and returns it with its formatted total.
func (b *Builder) Finalize() (model.Order, string, error) {
	if len(b.lines) == 0 {
		return model.Order{}, "", model.ErrEmptyOrder
	}

	total, discounted := b.pricing.Apply(b.subtotal, b.quantity)

	order := model.Order{
		ID:         uuid.New(),
		Lines:      b.Lines(),
		Subtotal:   b.subtotal,
		Total:      total,
		Discounted: discounted,
		CreatedAt:  time.Now(),
	}

	return order, b.pricing.Format(total), nil
}
