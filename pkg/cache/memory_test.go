package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	in := payload{Name: "chart", Value: 101.5}
	require.NoError(t, mc.Set(ctx, "k1", in, time.Minute))

	var out payload
	require.NoError(t, mc.Get(ctx, "k1", &out))
	require.Equal(t, in, out)
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var out payload
	err := mc.Get(context.Background(), "absent", &out)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiration(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k1", payload{Name: "x"}, 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	var out payload
	err := mc.Get(ctx, "k1", &out)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k1", payload{Name: "x"}, time.Minute))
	require.NoError(t, mc.Delete(ctx, "k1"))

	var out payload
	require.ErrorIs(t, mc.Get(ctx, "k1", &out), ErrCacheMiss)
}

func TestMemoryCacheEviction(t *testing.T) {
	mc := NewMemoryCache(WithMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", payload{Name: "a"}, time.Minute))
	require.NoError(t, mc.Set(ctx, "b", payload{Name: "b"}, time.Minute))
	require.NoError(t, mc.Set(ctx, "c", payload{Name: "c"}, time.Minute))

	misses := 0
	for _, key := range []string{"a", "b", "c"} {
		var out payload
		if err := mc.Get(ctx, key, &out); err != nil {
			misses++
		}
	}
	require.Equal(t, 1, misses)
}
