package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"Foodgram/config"
	"Foodgram/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStorage(t *testing.T) (*RedisRelationStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewRedisRelationStorage(rds), mr
}

func storages(t *testing.T) map[string]RelationCache {
	rs, _ := newRedisStorage(t)
	return map[string]RelationCache{
		"redis":  rs,
		"memory": NewMemoryRelationStorage(),
	}
}

func TestRelationCache_ColdUntilFilled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, c := range storages(t) {
		t.Run(name, func(t *testing.T) {
			_, _, warm, err := c.Members(ctx, 1, models.RelationFavorite)
			require.NoError(t, err)
			assert.False(t, warm)

			// Add on a cold set must not make it look warm.
			require.NoError(t, c.Add(ctx, 1, models.RelationFavorite, 10))
			_, version, warm, err := c.Members(ctx, 1, models.RelationFavorite)
			require.NoError(t, err)
			assert.False(t, warm)

			require.NoError(t, c.Fill(ctx, 1, models.RelationFavorite, version, nil))
			ids, _, warm, err := c.Members(ctx, 1, models.RelationFavorite)
			require.NoError(t, err)
			assert.True(t, warm)
			assert.Empty(t, ids)
		})
	}
}

func TestRelationCache_AddRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, c := range storages(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Fill(ctx, 7, models.RelationShoppingCart, 0, []uint64{1, 2}))
			require.NoError(t, c.Add(ctx, 7, models.RelationShoppingCart, 3))
			require.NoError(t, c.Remove(ctx, 7, models.RelationShoppingCart, 1))

			ids, _, warm, err := c.Members(ctx, 7, models.RelationShoppingCart)
			require.NoError(t, err)
			require.True(t, warm)
			assert.Equal(t, map[uint64]struct{}{2: {}, 3: {}}, ids)

			// kinds are independent
			_, _, warm, err = c.Members(ctx, 7, models.RelationFavorite)
			require.NoError(t, err)
			assert.False(t, warm)
		})
	}
}

func TestRelationCache_FillAfterWriteIsDropped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, c := range storages(t) {
		t.Run(name, func(t *testing.T) {
			// reader sees a cold set and loads an empty snapshot
			_, version, warm, err := c.Members(ctx, 4, models.RelationFavorite)
			require.NoError(t, err)
			require.False(t, warm)

			// a writer commits before the reader fills
			require.NoError(t, c.Add(ctx, 4, models.RelationFavorite, 21))
			require.NoError(t, c.Fill(ctx, 4, models.RelationFavorite, version, nil))

			_, version, warm, err = c.Members(ctx, 4, models.RelationFavorite)
			require.NoError(t, err)
			assert.False(t, warm)

			require.NoError(t, c.Fill(ctx, 4, models.RelationFavorite, version, []uint64{21}))
			ids, version, warm, err := c.Members(ctx, 4, models.RelationFavorite)
			require.NoError(t, err)
			require.True(t, warm)
			assert.Equal(t, map[uint64]struct{}{21: {}}, ids)

			// a stale fill must not undo a remove on a warm set either
			require.NoError(t, c.Remove(ctx, 4, models.RelationFavorite, 21))
			require.NoError(t, c.Fill(ctx, 4, models.RelationFavorite, version, []uint64{21}))
			ids, _, warm, err = c.Members(ctx, 4, models.RelationFavorite)
			require.NoError(t, err)
			require.True(t, warm)
			assert.Empty(t, ids)
		})
	}
}

func TestRedisRelationStorage_Expires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mr := newRedisStorage(t)

	require.NoError(t, s.Fill(ctx, 3, models.RelationFavorite, 0, []uint64{5}))
	assert.Equal(t, relationExpireAt, mr.TTL("foodgram:relation:favorite:3"))

	mr.FastForward(relationExpireAt + 1)
	_, _, warm, err := s.Members(ctx, 3, models.RelationFavorite)
	require.NoError(t, err)
	assert.False(t, warm)
}

func TestRedisRelationStorage_Unavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mr := newRedisStorage(t)
	mr.Close()

	_, _, _, err := s.Members(ctx, 1, models.RelationFavorite)
	assert.Error(t, err)
}

func TestMemoryRelationStorage_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryRelationStorage()
	require.NoError(t, s.Fill(ctx, 1, models.RelationFavorite, 0, nil))

	var wg sync.WaitGroup
	for i := uint64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_ = s.Add(ctx, 1, models.RelationFavorite, id)
		}(i)
	}
	wg.Wait()

	ids, _, warm, err := s.Members(ctx, 1, models.RelationFavorite)
	require.NoError(t, err)
	assert.True(t, warm)
	assert.Len(t, ids, 50)
}

func TestNewRelationCache_MemoryWithoutRedis(t *testing.T) {
	t.Parallel()

	c, cleanup, err := NewRelationCache(config.Default())
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &MemoryRelationStorage{}, c)
}

func TestNewRelationCache_Redis(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)

	conf := config.Default()
	conf.Redis.Address = mr.Addr()
	c, cleanup, err := NewRelationCache(conf)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &RedisRelationStorage{}, c)
}

func TestMemoryRelationStorage_Expires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryRelationStorage()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Fill(ctx, 2, models.RelationFavorite, 0, []uint64{9}))
	_, _, warm, _ := s.Members(ctx, 2, models.RelationFavorite)
	assert.True(t, warm)

	now = now.Add(relationExpireAt)
	_, _, warm, _ = s.Members(ctx, 2, models.RelationFavorite)
	assert.False(t, warm)
}
