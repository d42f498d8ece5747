package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is a single menu entry and the quantity ordered.
// Lines are only built through NewOrderLine so the quantity is always positive.
type OrderLine struct {
	entry    MenuEntry
	quantity int
}

// NewOrderLine creates an order line, rejecting non-positive quantities and negative prices.
func NewOrderLine(entry MenuEntry, quantity int) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, ErrInvalidQuantity
	}
	if entry.Price < 0 {
		return OrderLine{}, ErrInvalidPrice
	}
	return OrderLine{entry: entry, quantity: quantity}, nil
}

// Entry returns the menu entry of the line.
func (l OrderLine) Entry() MenuEntry { return l.entry }

// Quantity returns the ordered quantity.
func (l OrderLine) Quantity() int { return l.quantity }

// Amount returns price × quantity.
func (l OrderLine) Amount() decimal.Decimal {
	return decimal.NewFromFloat(l.entry.Price).Mul(decimal.NewFromInt(int64(l.quantity)))
}

// String renders the line as "Name xQty".
func (l OrderLine) String() string {
	return fmt.Sprintf("%s x%d", l.entry.Name, l.quantity)
}

// Order represents a finalized customer order.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	Lines      []OrderLine     `json:"-"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Total      decimal.Decimal `json:"total"`
	Discounted bool            `json:"discounted"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// TotalQuantity returns the cumulative quantity across all lines.
func (o Order) TotalQuantity() int {
	total := 0
	for _, line := range o.Lines {
		total += line.quantity
	}
	return total
}

// String renders the order as a comma separated list of lines.
func (o Order) String() string {
	parts := make([]string, len(o.Lines))
	for i, line := range o.Lines {
		parts[i] = line.String()
	}
	return strings.Join(parts, ", ")
}

// ProcessedOrder is an archived order as read back from storage.
type ProcessedOrder struct {
	ID          uuid.UUID
	Summary     string
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
	Discounted  bool
	CreatedAt   time.Time
	ProcessedAt time.Time
	Lines       []ProcessedLine
}

// ProcessedLine is an archived order line.
type ProcessedLine struct {
	Name     string
	Size     string
	Price    decimal.Decimal
	Quantity int
}
