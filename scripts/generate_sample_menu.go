package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"restaurant/internal/menu"
	"restaurant/internal/model"

	"github.com/rs/zerolog"
)

// generateSampleMenu writes a starter menu for local runs:
//
//	go run scripts/generate_sample_menu.go && MENU_FILE=data/menu.json go run ./cmd/restaurant
func main() {
	dataDir := "data"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	m := menu.NewMenu(menu.DefaultCategories...)

	items := map[string][]model.MenuEntry{
		"Beverages": {
			{Name: "Coffee", Price: 2.00, Size: "M"},
			{Name: "Tea", Price: 1.50, Size: "S"},
			{Name: "Orange Juice", Price: 3.25, Size: "L"},
		},
		"Appetizers": {
			{Name: "Muffin", Price: 3.00, Size: "L"},
			{Name: "Garlic Bread", Price: 4.50, Size: "M"},
		},
		"Main Courses": {
			{Name: "Margherita Pizza", Price: 11.90, Size: "L"},
			{Name: "Caesar Salad", Price: 8.75, Size: "M"},
		},
	}

	for _, category := range menu.DefaultCategories {
		for _, entry := range items[category] {
			m.Add(category, entry)
		}
	}

	path := filepath.Join(dataDir, "menu.json")
	store := menu.NewFileStore(zerolog.Nop())
	if err := store.Save(context.Background(), m, path); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	log.Printf("Created %s with %d items", path, m.Len())
}
