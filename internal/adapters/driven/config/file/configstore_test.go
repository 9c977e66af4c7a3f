package file

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
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

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".artgraph", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("europeana.provider", "Rijksmuseum")
	require.NoError(t, err)

	val, ok := store.Get("europeana.provider")
	assert.True(t, ok)
	assert.Equal(t, "Rijksmuseum", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("string_key", "hello world"))
	assert.Equal(t, "hello world", store.GetString("string_key"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("int_key", 42))
	assert.Equal(t, "", store.GetString("int_key"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("int_key", 42))
	assert.Equal(t, 42, store.GetInt("int_key"))

	// Non-existent key
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("string_key", "not an int"))
	assert.Equal(t, 0, store.GetInt("string_key"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("europeana.rate_limit", 2.5))
	assert.Equal(t, 2.5, store.GetFloat("europeana.rate_limit"))

	// Integers widen
	require.NoError(t, store.Set("whole", 5))
	assert.Equal(t, 5.0, store.GetFloat("whole"))

	assert.Equal(t, 0.0, store.GetFloat("nonexistent"))

	require.NoError(t, store.Set("string_key", "2.5"))
	assert.Equal(t, 0.0, store.GetFloat("string_key"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("europeana.rows", 20))
	require.NoError(t, store.Set("europeana.provider", "Mauritshuis"))

	require.NoError(t, store.Delete("europeana.rows"))
	_, ok := store.Get("europeana.rows")
	assert.False(t, ok)

	// Absent key is not an error
	assert.NoError(t, store.Delete("europeana.rows"))

	// Deletion is persisted
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok = store2.Get("europeana.rows")
	assert.False(t, ok)
	assert.Equal(t, "Mauritshuis", store2.GetString("europeana.provider"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store1.Set("europeana.api_key", "secret"))
	require.NoError(t, store1.Set("europeana.rows", 42))
	require.NoError(t, store1.Set("europeana.rate_limit", 1.5))

	// Create new store instance - should load from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "secret", store2.GetString("europeana.api_key"))
	assert.Equal(t, 42, store2.GetInt("europeana.rows"))
	assert.Equal(t, 1.5, store2.GetFloat("europeana.rate_limit"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("europeana.provider", "Rijksmuseum"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[europeana]")
	assert.Contains(t, string(data), "provider = 'Rijksmuseum'")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[europeana]\napi_key = \"abc\"\nrows = 10\nrate_limit = 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "abc", store.GetString("europeana.api_key"))
	assert.Equal(t, 10, store.GetInt("europeana.rows"))
	assert.Equal(t, 2.0, store.GetFloat("europeana.rate_limit"))
}

func TestConfigStore_Save_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("europeana", "flat"))
	assert.Error(t, store.Set("europeana.rows", 10))
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.GetFloat(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["manual_key"] = "manual_value"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "manual_value", store2.GetString("manual_key"))
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_HandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		op       fsnotify.Op
		reloaded bool
	}{
		{name: "write to config", fileName: "config.toml", op: fsnotify.Write, reloaded: true},
		{name: "create config", fileName: "config.toml", op: fsnotify.Create, reloaded: true},
		{name: "rename config", fileName: "config.toml", op: fsnotify.Rename, reloaded: true},
		{name: "combined write and chmod", fileName: "config.toml", op: fsnotify.Write | fsnotify.Chmod, reloaded: true},
		{name: "chmod only", fileName: "config.toml", op: fsnotify.Chmod, reloaded: false},
		{name: "other file", fileName: "notes.txt", op: fsnotify.Write, reloaded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			store, err := NewConfigStore(tmpDir)
			require.NoError(t, err)

			content := "[europeana]\nprovider = \"Mauritshuis\"\n"
			require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

			reloaded := store.handleEvent(fsnotify.Event{
				Name: filepath.Join(tmpDir, tt.fileName),
				Op:   tt.op,
			})

			assert.Equal(t, tt.reloaded, reloaded)
			if tt.reloaded {
				assert.Equal(t, "Mauritshuis", store.GetString("europeana.provider"))
			} else {
				assert.Equal(t, "", store.GetString("europeana.provider"))
			}
		})
	}

	t.Run("invalid file keeps previous values", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Set("europeana.provider", "Rijksmuseum"))
		require.NoError(t, os.WriteFile(store.Path(), []byte("][ broken"), 0600))

		reloaded := store.handleEvent(fsnotify.Event{Name: store.Path(), Op: fsnotify.Write})

		assert.False(t, reloaded)
		assert.Equal(t, "Rijksmuseum", store.GetString("europeana.provider"))
	})

	t.Run("removed file empties configuration", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Set("europeana.provider", "Rijksmuseum"))
		require.NoError(t, os.Remove(store.Path()))

		reloaded := store.handleEvent(fsnotify.Event{Name: store.Path(), Op: fsnotify.Remove})

		assert.True(t, reloaded)
		_, ok := store.Get("europeana.provider")
		assert.False(t, ok)
	})
}

func TestConfigStore_Watch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var changes atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { changes.Add(1) })
	}()

	content := []byte("[europeana]\nprovider = \"Mauritshuis\"\n")
	assert.Eventually(t, func() bool {
		// Rewrite until the watcher is registered and sees a change
		_ = os.WriteFile(store.Path(), content, 0600)
		return changes.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, "Mauritshuis", store.GetString("europeana.provider"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
