// Package shell implements the numbered text menus of the ordering terminal.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"restaurant/internal/menu"
	"restaurant/internal/model"
	"restaurant/internal/order"
	"restaurant/internal/service"

	"github.com/rs/zerolog"
)

const (
	mainPrompt = "\nChoose an action: (1) Add Order, (2) Process Order, (3) Show Orders, (4) Manage Menu, (5) Exit: "
	menuPrompt = "\nMenu Management: (1) Add Item, (2) Update Item, (3) Delete Item, (4) Back: "

	maxLineSize = 1 << 20
)

// Shell reads commands from an input stream and writes prompts and results to an output stream.
type Shell struct {
	scanner *bufio.Scanner
	out     io.Writer
	menus   service.MenuService
	orders  service.OrderService
	pricing order.Pricing
	logger  zerolog.Logger
}

// New creates a shell session.
func New(
	in io.Reader,
	out io.Writer,
	menus service.MenuService,
	orders service.OrderService,
	pricing order.Pricing,
	logger zerolog.Logger,
) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	return &Shell{
		scanner: scanner,
		out:     out,
		menus:   menus,
		orders:  orders,
		pricing: pricing,
		logger:  logger.With().Str("component", "shell").Logger(),
	}
}

// Run executes the main menu loop until the user exits or input ends.
// Every path out of the loop saves the menu, including read failures.
func (s *Shell) Run(ctx context.Context) error {
	for {
		action, err := s.prompt(mainPrompt)
		if err == nil {
			var done bool
			done, err = s.dispatch(ctx, action)
			if done {
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			s.logger.Debug().Msg("input closed")
			s.println()
			s.exit(ctx)
			return nil
		}
		if err != nil {
			s.logger.Error().Err(err).Msg("input failed")
			s.println()
			s.exit(ctx)
			return err
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, action string) (bool, error) {
	switch action {
	case "1":
		return false, s.addOrder()
	case "2":
		s.processOrder(ctx)
	case "3":
		s.showOrders()
	case "4":
		return false, s.manageMenu()
	case "5":
		s.exit(ctx)
		return true, nil
	default:
		s.println("Invalid option, try again.")
	}
	return false, nil
}

func (s *Shell) addOrder() error {
	catalog := s.menus.Catalog()
	if catalog.Len() == 0 {
		s.println("The menu is empty. Add items before taking orders.")
		return nil
	}

	s.println("\nWelcome to the restaurant!")
	for i, entry := range catalog.Entries() {
		s.printf("%d. %s\n", i, entry)
	}

	builder := order.NewBuilder(catalog, s.pricing)
	for {
		index, err := s.readIndex(catalog.Len())
		if err != nil {
			return s.abandon(builder, err)
		}
		quantity, err := s.readQuantity()
		if err != nil {
			return s.abandon(builder, err)
		}

		if err := builder.Add(index, quantity); err != nil {
			s.println(err)
			continue
		}

		answer, err := s.prompt("Do you want to add more items? (y/n): ")
		if err != nil {
			return s.abandon(builder, err)
		}
		if !order.IsAffirmative(answer) {
			break
		}
	}

	placed, total, err := builder.Finalize()
	if err != nil {
		return err
	}

	s.printf("Total Order: %s\n", total)
	s.orders.Place(placed)
	s.printf("Order added: %s\n", placed)
	return nil
}

func (s *Shell) abandon(builder *order.Builder, err error) error {
	s.logger.Warn().
		Int("lines", len(builder.Lines())).
		Msg("order abandoned before completion")
	return err
}

func (s *Shell) readIndex(length int) (int, error) {
	for {
		input, err := s.prompt("Type the index of the item: ")
		if err != nil {
			return 0, err
		}
		index, err := order.ParseIndex(input, length)
		if err != nil {
			s.println(err)
			continue
		}
		return index, nil
	}
}

func (s *Shell) readQuantity() (int, error) {
	for {
		input, err := s.prompt("Type the amount of the item: ")
		if err != nil {
			return 0, err
		}
		quantity, err := order.ParseQuantity(input)
		if err != nil {
			s.println(err)
			continue
		}
		return quantity, nil
	}
}

func (s *Shell) processOrder(ctx context.Context) {
	processed, ok, err := s.orders.ProcessNext(ctx)
	if !ok {
		s.println("No orders to process.")
		return
	}

	s.printf("Processing order: %s - %s\n", processed, s.pricing.Format(processed.Total))
	if err != nil {
		s.printf("Warning: %v\n", err)
	}
}

func (s *Shell) showOrders() {
	pending := s.orders.Pending()
	if len(pending) == 0 {
		s.println("No pending orders.")
		return
	}

	s.println("\nPending Orders:")
	for i, o := range pending {
		s.printf("%d. %s - %s\n", i+1, o, s.pricing.Format(o.Total))
	}
}

func (s *Shell) manageMenu() error {
	for {
		action, err := s.prompt(menuPrompt)
		if err != nil {
			return err
		}

		switch action {
		case "1":
			err = s.addItem()
		case "2":
			err = s.updateItem()
		case "3":
			err = s.deleteItem()
		case "4":
			return nil
		default:
			s.println("Invalid option, try again.")
		}

		if err != nil {
			return err
		}
	}
}

func (s *Shell) addItem() error {
	category, err := s.readCategory()
	if err != nil {
		return err
	}
	entry, err := s.readEntry("Enter item name: ", "Enter price: ", "Enter size: ")
	if err != nil {
		return err
	}

	s.report(s.menus.AddItem(category, entry), category, entry.Name, "Item added.")
	return nil
}

func (s *Shell) updateItem() error {
	category, err := s.readCategory()
	if err != nil {
		return err
	}
	name, err := s.prompt("Enter item name to update: ")
	if err != nil {
		return err
	}
	entry, err := s.readEntry("Enter new name: ", "Enter new price: ", "Enter new size: ")
	if err != nil {
		return err
	}

	s.report(s.menus.UpdateItem(category, name, entry), category, name, "Item updated.")
	return nil
}

func (s *Shell) deleteItem() error {
	category, err := s.readCategory()
	if err != nil {
		return err
	}
	name, err := s.prompt("Enter item name to delete: ")
	if err != nil {
		return err
	}

	s.report(s.menus.DeleteItem(category, name), category, name, "Item deleted.")
	return nil
}

func (s *Shell) readCategory() (string, error) {
	s.printf("Categories: %s\n", strings.Join(s.menus.Categories(), ", "))
	return s.prompt("Enter category: ")
}

func (s *Shell) readEntry(namePrompt, pricePrompt, sizePrompt string) (model.MenuEntry, error) {
	name, err := s.prompt(namePrompt)
	if err != nil {
		return model.MenuEntry{}, err
	}
	price, err := s.readPrice(pricePrompt)
	if err != nil {
		return model.MenuEntry{}, err
	}
	size, err := s.prompt(sizePrompt)
	if err != nil {
		return model.MenuEntry{}, err
	}
	return model.MenuEntry{Name: name, Price: price, Size: size}, nil
}

func (s *Shell) readPrice(text string) (float64, error) {
	for {
		input, err := s.prompt(text)
		if err != nil {
			return 0, err
		}
		price, err := strconv.ParseFloat(input, 64)
		if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			s.println(model.ErrInvalidPrice)
			continue
		}
		return price, nil
	}
}

func (s *Shell) report(status menu.Status, category, name, success string) {
	switch status {
	case menu.StatusOK:
		s.println(success)
	case menu.StatusCategoryNotFound:
		s.printf("Category '%s' does not exist.\n", category)
	case menu.StatusItemNotFound:
		s.printf("Item '%s' not found in category '%s'.\n", name, category)
	}
}

func (s *Shell) exit(ctx context.Context) {
	if err := s.menus.Save(ctx); err != nil {
		s.printf("Failed to save menu: %v\n", err)
	} else {
		s.printf("Menu saved to %s.\n", s.menus.Location())
	}
	s.println("Exiting program.")
}

// prompt writes text and returns the next trimmed input line, or io.EOF.
func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
