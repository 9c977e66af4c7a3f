package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestNewConfigStoreFrom_CopiesSeed(t *testing.T) {
	seed := map[string]any{"europeana.rows": 20}
	store := NewConfigStoreFrom(seed)

	seed["europeana.rows"] = 99
	require.NoError(t, store.Set("europeana.provider", "Mauritshuis"))

	assert.Equal(t, 20, store.GetInt("europeana.rows"))
	assert.NotContains(t, seed, "europeana.provider")
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("europeana.provider", "Rijksmuseum"))
	require.NoError(t, store.Set("europeana.provider", "Mauritshuis"))

	val, ok := store.Get("europeana.provider")
	assert.True(t, ok)
	assert.Equal(t, "Mauritshuis", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("rows", 20))
	require.NoError(t, store.Set("rows64", int64(30)))
	require.NoError(t, store.Set("rate", 2.5))
	require.NoError(t, store.Set("name", "api2demo"))

	assert.Equal(t, 20, store.GetInt("rows"))
	assert.Equal(t, 30, store.GetInt("rows64"))
	assert.Equal(t, 2, store.GetInt("rate"))
	assert.Equal(t, 2.5, store.GetFloat("rate"))
	assert.Equal(t, 20.0, store.GetFloat("rows"))
	assert.Equal(t, "api2demo", store.GetString("name"))

	assert.Equal(t, "", store.GetString("rows"))
	assert.Equal(t, 0, store.GetInt("name"))
	assert.Equal(t, 0.0, store.GetFloat("missing"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", "value"))

	require.NoError(t, store.Delete("key"))
	require.NoError(t, store.Delete("key"))

	_, ok := store.Get("key")
	assert.False(t, ok)
}

func TestConfigStore_SaveLoadNoop(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", "value"))

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "value", store.GetString("key"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n%5)
			_ = store.Set(key, n)
			_ = store.GetInt(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, ok := store.Get(fmt.Sprintf("key%d", i))
		assert.True(t, ok)
	}
}
