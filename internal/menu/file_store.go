package menu

import (
	"context"
	"fmt"
	"os"

	"restaurant/internal/model"

	"github.com/rs/zerolog"
)

// fileStore implements Store on the local file system.
type fileStore struct {
	logger zerolog.Logger
}

// NewFileStore creates a new file-based menu store.
func NewFileStore(logger zerolog.Logger) Store {
	return &fileStore{
		logger: logger.With().Str("component", "menu-file-store").Logger(),
	}
}

// Load reads a JSON menu file.
func (s *fileStore) Load(ctx context.Context, path string) (*Menu, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrMenuLoad, err)
	}

	s.logger.Debug().Str("file", path).Msg("loading menu file")

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to read menu file")
		return nil, fmt.Errorf("%w: read %s: %w", model.ErrMenuLoad, path, err)
	}

	m, err := decode(data)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to parse menu file")
		return nil, fmt.Errorf("%w: parse %s: %w", model.ErrMenuLoad, path, err)
	}

	s.logger.Info().
		Str("file", path).
		Int("categories", len(m.categories)).
		Int("items", m.Len()).
		Msg("menu file loaded successfully")

	return m, nil
}

// Save writes the menu as indented JSON, replacing the file.
func (s *fileStore) Save(ctx context.Context, m *Menu, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrMenuSave, err)
	}

	data, err := encode(m)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to encode menu")
		return fmt.Errorf("%w: encode: %w", model.ErrMenuSave, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to write menu file")
		return fmt.Errorf("%w: write %s: %w", model.ErrMenuSave, path, err)
	}

	s.logger.Info().
		Str("file", path).
		Int("items", m.Len()).
		Msg("menu file saved")

	return nil
}
