package menu

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"restaurant/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveThenLoad_RoundTrip(t *testing.T) {
	store := NewFileStore(zerolog.Nop())
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "menu.json")

	original := sampleMenu()
	require.NoError(t, store.Save(ctx, original, path))

	loaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
	assert.Equal(t, original.Categories(), loaded.Categories())
}

func TestFileStore_Save_Overwrites(t *testing.T) {
	store := NewFileStore(zerolog.Nop())
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "menu.json")

	require.NoError(t, store.Save(ctx, sampleMenu(), path))

	smaller := NewMenu("Beverages")
	smaller.Add("Beverages", model.MenuEntry{Name: "Water", Price: 0.5, Size: "S"})
	require.NoError(t, store.Save(ctx, smaller, path))

	loaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, smaller, loaded)
}

func TestFileStore_Load_Errors(t *testing.T) {
	store := NewFileStore(zerolog.Nop())
	ctx := context.Background()
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not json"), 0644))

	tests := []struct {
		name     string
		path     string
		errMatch string
	}{
		{
			name:     "File not found",
			path:     filepath.Join(dir, "missing.json"),
			errMatch: "read",
		},
		{
			name:     "Malformed file",
			path:     malformed,
			errMatch: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := store.Load(ctx, tt.path)

			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, model.ErrMenuLoad)
			assert.Contains(t, err.Error(), tt.errMatch)
		})
	}
}

func TestFileStore_Load_ReadsHandWrittenFile(t *testing.T) {
	store := NewFileStore(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "menu.json")

	content := `{
    "Beverages": [
        {"name": "Coffee", "price": 2.0, "size": "M"}
    ],
    "Appetizers": [
        {"name": "Muffin", "price": 3, "size": "L"}
    ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := store.Load(context.Background(), path)
	require.NoError(t, err)

	catalog := NewCatalog(m)
	require.Equal(t, 2, catalog.Len())
	entry, err := catalog.ItemAt(1)
	require.NoError(t, err)
	assert.Equal(t, model.MenuEntry{Name: "Muffin", Price: 3, Size: "L"}, entry)
}

func TestFileStore_Save_Error(t *testing.T) {
	store := NewFileStore(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "missing-dir", "menu.json")

	err := store.Save(context.Background(), sampleMenu(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMenuSave)
}

func TestFileStore_CancelledContext(t *testing.T) {
	store := NewFileStore(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "menu.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Save(ctx, sampleMenu(), path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, model.ErrMenuSave)

	_, err = store.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, model.ErrMenuLoad)
}
