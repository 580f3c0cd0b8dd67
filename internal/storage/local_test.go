package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"getapet-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), storage.KindPets, ".png", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, "images", storage.KindPets, name))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestLocalStoreUniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	a, err := store.Save(context.Background(), storage.KindUsers, ".jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save(context.Background(), storage.KindUsers, ".jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
