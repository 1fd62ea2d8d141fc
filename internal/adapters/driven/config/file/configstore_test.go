package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("test_key", "test_value")
	require.NoError(t, err)

	val, ok := store.Get("test_key")
	assert.True(t, ok)
	assert.Equal(t, "test_value", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("string_key", "hello world")
	require.NoError(t, err)

	val := store.GetString("string_key")
	assert.Equal(t, "hello world", val)

	// Non-existent key
	val = store.GetString("nonexistent")
	assert.Equal(t, "", val)

	// Wrong type
	err = store.Set("int_key", 42)
	require.NoError(t, err)
	val = store.GetString("int_key")
	assert.Equal(t, "", val)
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("int_key", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, store.GetInt("int_key"))

	assert.Equal(t, 0, store.GetInt("nonexistent"))

	err = store.Set("string_key", "not an int")
	require.NoError(t, err)
	assert.Equal(t, 0, store.GetInt("string_key"))
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("bool_key", true)
	require.NoError(t, err)
	assert.True(t, store.GetBool("bool_key"))

	assert.False(t, store.GetBool("nonexistent"))
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("search.limit", 10))
	require.NoError(t, store.Delete("search.limit"))

	_, ok := store.Get("search.limit")
	assert.False(t, ok)

	// Deleting an absent key is fine
	require.NoError(t, store.Delete("never_set"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("search.limit", 15))
	require.NoError(t, store.Set("metadata.base_url", "https://example.org"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 15, reopened.GetInt("search.limit"))
	assert.Equal(t, "https://example.org", reopened.GetString("metadata.base_url"))
}

func TestConfigStore_WritesNestedTOML(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("search.limit", 15))
	require.NoError(t, store.Set("search.debounce_ms", 250))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[search]")
	assert.NotContains(t, string(data), `"search.limit"`)
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nlimit = 25\n\n[metadata]\nbase_url = \"https://openlibrary.org\"\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 25, store.GetInt("search.limit"))
	assert.Equal(t, "https://openlibrary.org", store.GetString("metadata.base_url"))
}

func TestConfigStore_LoadMissingFileStartsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"search": map[string]any{
			"limit": int64(20),
			"ui": map[string]any{
				"compact": true,
			},
		},
		"verbose": false,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, int64(20), flat["search.limit"])
	assert.Equal(t, true, flat["search.ui.compact"])
	assert.Equal(t, false, flat["verbose"])
}

func TestNestMap_RoundTrip(t *testing.T) {
	flat := map[string]any{
		"search.limit":      int64(20),
		"search.ui.compact": true,
		"verbose":           false,
	}

	assert.Equal(t, flat, flattenMap(nestMap(flat), ""))
}
