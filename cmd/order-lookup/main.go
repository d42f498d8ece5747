package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/database"
	"restaurant/internal/model"
	"restaurant/internal/repository"

	"github.com/google/uuid"
)

var errOrderNotFound = errors.New("order not found in archive")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	id, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("invalid archive database configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	archive := repository.NewOrderRepository(pool, logger)

	processed, err := archive.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if processed == nil {
		return fmt.Errorf("%w: %s", errOrderNotFound, id)
	}

	printOrder(out, processed, cfg.Pricing.Currency)
	return nil
}

func parseArgs(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, errors.New("usage: order-lookup <order-id>")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid order id %q: %w", args[0], err)
	}
	return id, nil
}

// printOrder writes an archived order in the terminal's receipt format.
func printOrder(out io.Writer, o *model.ProcessedOrder, currency string) {
	fmt.Fprintf(out, "Order %s\n", o.ID)
	fmt.Fprintf(out, "Placed:    %s\n", o.CreatedAt.Format(time.DateTime))
	fmt.Fprintf(out, "Processed: %s\n", o.ProcessedAt.Format(time.DateTime))
	for _, line := range o.Lines {
		fmt.Fprintf(out, "  %s (%s) x%d @ %s%s\n", line.Name, line.Size, line.Quantity, currency, line.Price.StringFixed(2))
	}
	fmt.Fprintf(out, "Subtotal: %s%s\n", currency, o.Subtotal.StringFixed(2))
	if o.Discounted {
		fmt.Fprintln(out, "Quantity discount applied")
	}
	fmt.Fprintf(out, "Total: %s%s\n", currency, o.Total.StringFixed(2))
}
