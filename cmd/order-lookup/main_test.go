package main

import (
	"bytes"
	"testing"
	"time"

	"restaurant/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		args        []string
		errorMsg    string
		expectError bool
	}{
		{name: "Valid id", args: []string{id.String()}},
		{name: "Missing id", args: nil, expectError: true, errorMsg: "usage"},
		{name: "Too many args", args: []string{id.String(), "extra"}, expectError: true, errorMsg: "usage"},
		{name: "Malformed id", args: []string{"order-1"}, expectError: true, errorMsg: "invalid order id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseArgs(tt.args)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, parsed)
			}
		})
	}
}

func TestPrintOrder(t *testing.T) {
	placed := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	o := &model.ProcessedOrder{
		ID:          uuid.MustParse("7f1f0c55-2f52-4a8a-9a0e-3c8c1f6f2b11"),
		Summary:     "Coffee x2, Muffin x2",
		Subtotal:    decimal.RequireFromString("10"),
		Total:       decimal.RequireFromString("9"),
		Discounted:  true,
		CreatedAt:   placed,
		ProcessedAt: placed.Add(5 * time.Minute),
		Lines: []model.ProcessedLine{
			{Name: "Coffee", Size: "M", Price: decimal.RequireFromString("2"), Quantity: 2},
			{Name: "Muffin", Size: "L", Price: decimal.RequireFromString("3"), Quantity: 2},
		},
	}

	var buf bytes.Buffer
	printOrder(&buf, o, "$")

	output := buf.String()
	assert.Contains(t, output, "Order 7f1f0c55-2f52-4a8a-9a0e-3c8c1f6f2b11")
	assert.Contains(t, output, "Placed:    2026-03-14 12:30:00")
	assert.Contains(t, output, "Processed: 2026-03-14 12:35:00")
	assert.Contains(t, output, "  Coffee (M) x2 @ $2.00")
	assert.Contains(t, output, "  Muffin (L) x2 @ $3.00")
	assert.Contains(t, output, "Subtotal: $10.00")
	assert.Contains(t, output, "Quantity discount applied")
	assert.Contains(t, output, "Total: $9.00")
}

func TestPrintOrder_NoDiscount(t *testing.T) {
	o := &model.ProcessedOrder{
		ID:       uuid.New(),
		Subtotal: decimal.RequireFromString("2"),
		Total:    decimal.RequireFromString("2"),
		Lines: []model.ProcessedLine{
			{Name: "Tea", Size: "S", Price: decimal.RequireFromString("2"), Quantity: 1},
		},
	}

	var buf bytes.Buffer
	printOrder(&buf, o, "€")

	assert.NotContains(t, buf.String(), "discount")
	assert.Contains(t, buf.String(), "Total: €2.00")
}
