package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestBlobRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Set(ctx, "T4GEU-state", []byte(`{"a":1}`)))
	got, err = s.Get(ctx, "T4GEU-state")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(got))

	// last write wins
	require.NoError(t, s.Set(ctx, "T4GEU-state", []byte(`{"a":2}`)))
	got, err = s.Get(ctx, "T4GEU-state")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":2}`, string(got))

	require.NoError(t, s.Delete(ctx, "T4GEU-state"))
	got, err = s.Get(ctx, "T4GEU-state")
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting a missing key is fine
	require.NoError(t, s.Delete(ctx, "T4GEU-state"))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "B-state", []byte("b")))
	require.NoError(t, s.Set(ctx, "A-state", []byte("a")))
	require.NoError(t, s.Set(ctx, "cart-cache-A", []byte("c")))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"A-state", "B-state", "cart-cache-A"}, keys)
}

func TestKeyLayout(t *testing.T) {
	t.Parallel()

	require.Equal(t, "T4GEU-state", StateKey("T4GEU"))
	require.Equal(t, "T4GEU-checked", CheckedKey("T4GEU"))
	require.Equal(t, "cart-cache-T4GEU", CacheKey("T4GEU"))

	id, ok := StateCartID("T4GEU-state")
	require.True(t, ok)
	require.Equal(t, "T4GEU", id)
	_, ok = StateCartID("T4GEU-checked")
	require.False(t, ok)
	_, ok = StateCartID("cart-cache-T4GEU")
	require.False(t, ok)
}
