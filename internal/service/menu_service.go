package service

import (
	"context"

	"restaurant/internal/menu"
	"restaurant/internal/model"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	store    menu.Store
	location string
	menu     *menu.Menu
	catalog  *menu.Catalog
	logger   zerolog.Logger
}

// NewMenuService loads the menu at location and builds the first catalog.
func NewMenuService(ctx context.Context, store menu.Store, location string, logger zerolog.Logger) (MenuService, error) {
	logger = logger.With().Str("service", "menu").Logger()

	m, err := store.Load(ctx, location)
	if err != nil {
		logger.Error().Err(err).Str("location", location).Msg("menu unavailable")
		return nil, err
	}

	s := &menuService{
		store:    store,
		location: location,
		menu:     m,
		logger:   logger,
	}
	s.rebuild()

	return s, nil
}

// rebuild replaces the catalog snapshot after the menu changes.
func (s *menuService) rebuild() {
	s.catalog = menu.NewCatalog(s.menu)
	s.logger.Debug().Int("items", s.catalog.Len()).Msg("catalog rebuilt")
}

func (s *menuService) Catalog() *menu.Catalog {
	return s.catalog
}

func (s *menuService) Categories() []string {
	return s.menu.Categories()
}

func (s *menuService) AddItem(category string, entry model.MenuEntry) menu.Status {
	return s.apply("add", category, entry.Name, s.menu.Add(category, entry))
}

func (s *menuService) UpdateItem(category, name string, entry model.MenuEntry) menu.Status {
	return s.apply("update", category, name, s.menu.Update(category, name, entry))
}

func (s *menuService) DeleteItem(category, name string) menu.Status {
	return s.apply("delete", category, name, s.menu.Delete(category, name))
}

// apply logs a mutation result and rebuilds the catalog when it succeeded.
func (s *menuService) apply(op, category, name string, status menu.Status) menu.Status {
	if status != menu.StatusOK {
		s.logger.Warn().
			Str("operation", op).
			Str("category", category).
			Str("item", name).
			Str("status", status.String()).
			Msg("menu change skipped")
		return status
	}

	s.logger.Info().
		Str("operation", op).
		Str("category", category).
		Str("item", name).
		Msg("menu changed")
	s.rebuild()
	return status
}

func (s *menuService) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.menu, s.location); err != nil {
		s.logger.Error().Err(err).Str("location", s.location).Msg("failed to save menu")
		return err
	}
	return nil
}

func (s *menuService) Location() string {
	return s.location
}
