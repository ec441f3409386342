package kvstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peladahub/api-server/pkg/kvstore"
)

func TestMemoryValues(t *testing.T) {
	kv := kvstore.NewMemory()

	_, err := kv.Get("missing")
	require.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, kv.Set("k", "v"))
	val, err := kv.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", val)

	require.NoError(t, kv.Delete("k"))
	_, err = kv.Get("k")
	require.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestMemoryLists(t *testing.T) {
	kv := kvstore.NewMemory()

	require.NoError(t, kv.RPush("tokens", "a", "b", "a", "c"))

	all, err := kv.LRange("tokens", 0, -1)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "a", "c"}, all)

	require.NoError(t, kv.LRem("tokens", 1, "a"))
	all, err = kv.LRange("tokens", 0, -1)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, all)

	empty, err := kv.LRange("nothing", 0, -1)
	require.NoError(t, err)
	require.Empty(t, empty)
}
